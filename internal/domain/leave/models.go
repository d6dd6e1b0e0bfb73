package leave

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	TypeSick      = "sick"
	TypeCasual    = "casual"
	TypeEarned    = "earned"
	TypeMaternity = "maternity"
	TypePaternity = "paternity"

	dateLayout = "2006-01-02"
)

// Request is an employee-submitted time-off application. The employee name
// is a snapshot taken at submission so history survives employee deletion.
type Request struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	LeaveType    string `json:"leaveType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedOn    string `json:"appliedOn"`
}

type SubmitPayload struct {
	LeaveType string `json:"leaveType" validate:"required,oneof=sick casual earned maternity paternity"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}
