package employee

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employeeId"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	PasswordHash     string   `json:"passwordHash"`
	Role             Role     `json:"role"`
	YearOfJoining    int      `json:"yearOfJoining"`
	Department       string   `json:"department,omitempty"`
	Position         string   `json:"position,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
	PhoneNumber      string   `json:"phoneNumber,omitempty"`
	Address          string   `json:"address,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
	ProfileImage     string   `json:"profileImage,omitempty"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type SignupPayload struct {
	FirstName        string   `json:"firstName" validate:"required"`
	LastName         string   `json:"lastName" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=6"`
	Role             Role     `json:"role" validate:"omitempty,oneof=admin employee"`
	YearOfJoining    int      `json:"yearOfJoining" validate:"omitempty,gte=1900,lte=2100"`
	Department       string   `json:"department"`
	Position         string   `json:"position"`
	Salary           *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	PhoneNumber      string   `json:"phoneNumber"`
	Address          string   `json:"address"`
	DateOfBirth      string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContact string   `json:"emergencyContact"`
	ProfileImage     string   `json:"profileImage"`
}

// ProfileUpdate carries only the fields being changed; nil means "leave as
// is". Identity fields (email, role, employeeId) are not updatable here.
type ProfileUpdate struct {
	FirstName        *string  `json:"firstName,omitempty"`
	LastName         *string  `json:"lastName,omitempty"`
	Department       *string  `json:"department,omitempty"`
	Position         *string  `json:"position,omitempty"`
	Salary           *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	PhoneNumber      *string  `json:"phoneNumber,omitempty"`
	Address          *string  `json:"address,omitempty"`
	DateOfBirth      *string  `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContact *string  `json:"emergencyContact,omitempty"`
	ProfileImage     *string  `json:"profileImage,omitempty"`
}
