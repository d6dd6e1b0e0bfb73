package attendance

// Record is one day's entry for one employee. Absence is never stored: a
// missing record for a date is what "absent" means.
type Record struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employeeId"`
	Date        string   `json:"date"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut,omitempty"`
	Status      string   `json:"status"`
	HoursWorked *float64 `json:"hoursWorked,omitempty"`
}
