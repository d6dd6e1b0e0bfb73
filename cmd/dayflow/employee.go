package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayflow/internal/domain/employee"
)

func newEmployeeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the employee directory",
	}
	cmd.AddCommand(
		newEmployeeAddCmd(a),
		newEmployeeListCmd(a),
		newEmployeeShowCmd(a),
		newEmployeeUpdateCmd(a),
		newEmployeeDeleteCmd(a),
	)
	return cmd
}

func newEmployeeAddCmd(a *app) *cobra.Command {
	var payload employee.SignupPayload
	var role string
	var salary float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new employee (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			payload.Role = employee.Role(role)
			if cmd.Flags().Changed("salary") {
				payload.Salary = &salary
			}
			employeeID, err := a.employees.Signup(payload)
			if err != nil {
				return err
			}
			fmt.Printf("registered %s %s as %s\n", payload.FirstName, payload.LastName, employeeID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&payload.FirstName, "first", "", "first name")
	flags.StringVar(&payload.LastName, "last", "", "last name")
	flags.StringVar(&payload.Email, "email", "", "email address")
	flags.StringVar(&payload.Password, "password", "", "initial password")
	flags.StringVar(&role, "role", "", "role: admin or employee (default employee)")
	flags.IntVar(&payload.YearOfJoining, "year", 0, "year of joining (default current year)")
	flags.StringVar(&payload.Department, "department", "", "department")
	flags.StringVar(&payload.Position, "position", "", "position title")
	flags.Float64Var(&salary, "salary", 0, "annual salary")
	flags.StringVar(&payload.PhoneNumber, "phone", "", "phone number")
	flags.StringVar(&payload.Address, "address", "", "postal address")
	flags.StringVar(&payload.DateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
	flags.StringVar(&payload.EmergencyContact, "emergency-contact", "", "emergency contact")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newEmployeeListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the employee directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(); err != nil {
				return err
			}
			staff, err := a.employees.List()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMPLOYEE ID\tNAME\tEMAIL\tROLE\tDEPARTMENT\tPOSITION")
			for _, emp := range staff {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					emp.EmployeeID, emp.FullName(), emp.Email, emp.Role, emp.Department, emp.Position)
			}
			return w.Flush()
		},
	}
}

func newEmployeeShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <employeeId>",
		Short: "Show one employee's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(); err != nil {
				return err
			}
			emp, err := a.employees.Get(args[0])
			if err != nil {
				return err
			}
			if emp == nil {
				return fmt.Errorf("no employee with id %s", args[0])
			}

			fmt.Printf("%s (%s)\n", emp.FullName(), emp.EmployeeID)
			fmt.Printf("  email:      %s\n", emp.Email)
			fmt.Printf("  role:       %s\n", emp.Role)
			fmt.Printf("  joined:     %d\n", emp.YearOfJoining)
			if emp.Department != "" {
				fmt.Printf("  department: %s\n", emp.Department)
			}
			if emp.Position != "" {
				fmt.Printf("  position:   %s\n", emp.Position)
			}
			if emp.Salary != nil && a.gate.IsAdmin() {
				fmt.Printf("  salary:     %.2f\n", *emp.Salary)
			}
			if emp.PhoneNumber != "" {
				fmt.Printf("  phone:      %s\n", emp.PhoneNumber)
			}
			return nil
		},
	}
}

func newEmployeeUpdateCmd(a *app) *cobra.Command {
	var first, last, department, position, phone, address, dob, emergency string
	var salary float64

	cmd := &cobra.Command{
		Use:   "update <employeeId>",
		Short: "Update profile fields; only the flags given change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.requireUser()
			if err != nil {
				return err
			}
			if args[0] != current.EmployeeID && !a.gate.IsAdmin() {
				return fmt.Errorf("only admins may edit other employees")
			}

			var updates employee.ProfileUpdate
			set := func(name string, dst **string, src *string) {
				if cmd.Flags().Changed(name) {
					*dst = src
				}
			}
			set("first", &updates.FirstName, &first)
			set("last", &updates.LastName, &last)
			set("department", &updates.Department, &department)
			set("position", &updates.Position, &position)
			set("phone", &updates.PhoneNumber, &phone)
			set("address", &updates.Address, &address)
			set("dob", &updates.DateOfBirth, &dob)
			set("emergency-contact", &updates.EmergencyContact, &emergency)
			if cmd.Flags().Changed("salary") {
				if !a.gate.IsAdmin() {
					return fmt.Errorf("only admins may change salary")
				}
				updates.Salary = &salary
			}

			if err := a.employees.UpdateProfile(args[0], updates); err != nil {
				return err
			}
			fmt.Printf("updated %s\n", args[0])
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&first, "first", "", "first name")
	flags.StringVar(&last, "last", "", "last name")
	flags.StringVar(&department, "department", "", "department")
	flags.StringVar(&position, "position", "", "position title")
	flags.Float64Var(&salary, "salary", 0, "annual salary (admin)")
	flags.StringVar(&phone, "phone", "", "phone number")
	flags.StringVar(&address, "address", "", "postal address")
	flags.StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")
	flags.StringVar(&emergency, "emergency-contact", "", "emergency contact")
	return cmd
}

func newEmployeeDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <employeeId>",
		Short: "Remove an employee from the directory (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			if err := a.employees.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}
}
