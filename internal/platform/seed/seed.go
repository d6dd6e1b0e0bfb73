package seed

import (
	"errors"
	"log/slog"

	"dayflow/internal/domain/employee"
	"dayflow/internal/platform/config"
)

// Run creates the starter accounts. Re-running against an already-seeded
// data directory is harmless: existing emails are left alone.
func Run(cfg config.Config, employees *employee.Service) error {
	adminPassword := cfg.SeedAdminPassword
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	salary := func(v float64) *float64 { return &v }

	if err := ensure(employees, employee.SignupPayload{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         cfg.SeedAdminEmail,
		Password:      adminPassword,
		Role:          employee.RoleAdmin,
		YearOfJoining: 2024,
		Department:    "Management",
		Salary:        salary(85000),
	}); err != nil {
		return err
	}

	if cfg.SeedSampleData {
		if err := ensure(employees, employee.SignupPayload{
			FirstName:     "Sarah",
			LastName:      "Smith",
			Email:         "sarah@dayflow.local",
			Password:      "employee123",
			Role:          employee.RoleEmployee,
			YearOfJoining: 2024,
			Department:    "Engineering",
			Salary:        salary(65000),
		}); err != nil {
			return err
		}
	}

	return nil
}

func ensure(employees *employee.Service, payload employee.SignupPayload) error {
	employeeID, err := employees.Signup(payload)
	if errors.Is(err, employee.ErrDuplicateEmail) {
		slog.Info("seed account already present", "email", payload.Email)
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("seeded account", "email", payload.Email, "employeeId", employeeID)
	return nil
}
