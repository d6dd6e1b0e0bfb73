package employee

// SalaryTotals sums salary across employees, treating an unset salary as
// zero. The average is zero for an empty collection.
func SalaryTotals(employees []Employee) (total, average float64) {
	for _, emp := range employees {
		if emp.Salary != nil {
			total += *emp.Salary
		}
	}
	if len(employees) > 0 {
		average = total / float64(len(employees))
	}
	return total, average
}
