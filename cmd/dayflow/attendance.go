package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"dayflow/internal/domain/attendance"
)

func newCheckinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in for the signed-in employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.requireUser()
			if err != nil {
				return err
			}
			record, err := a.attendance.CheckIn(current.EmployeeID)
			if err != nil {
				return err
			}
			fmt.Printf("checked in at %s on %s\n", record.CheckIn, record.Date)
			return nil
		},
	}
}

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Record today's check-out and compute hours worked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.requireUser()
			if err != nil {
				return err
			}
			record, err := a.attendance.CheckOut(current.EmployeeID)
			if err != nil {
				return err
			}
			fmt.Printf("checked out at %s; %.1f hours worked\n", record.CheckOut, *record.HoursWorked)
			return nil
		},
	}
}

func newAttendanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Day-level attendance administration",
	}
	cmd.AddCommand(newAttendanceDayCmd(a), newAttendanceToggleCmd(a))
	return cmd
}

func newAttendanceDayCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show who is present and absent on a date (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format(attendance.DateLayout)
			}
			if _, err := time.Parse(attendance.DateLayout, date); err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			staff, err := a.employees.List()
			if err != nil {
				return err
			}
			records, err := a.reports.RecordsForDate(date)
			if err != nil {
				return err
			}
			byEmployee := make(map[string]attendance.Record, len(records))
			for _, rec := range records {
				byEmployee[rec.EmployeeID] = rec
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMPLOYEE ID\tNAME\tSTATUS\tCHECK IN\tCHECK OUT")
			present := 0
			for _, emp := range staff {
				rec, ok := byEmployee[emp.EmployeeID]
				if !ok {
					fmt.Fprintf(w, "%s\t%s\t%s\t\t\n", emp.EmployeeID, emp.FullName(), attendance.StatusAbsent)
					continue
				}
				present++
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", emp.EmployeeID, emp.FullName(), rec.Status, rec.CheckIn, rec.CheckOut)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%s: %d present, %d absent\n", date, present, len(staff)-present)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	return cmd
}

func newAttendanceToggleCmd(a *app) *cobra.Command {
	var date string
	var absent bool

	cmd := &cobra.Command{
		Use:   "toggle <employeeId>",
		Short: "Mark an employee present or absent on a date (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format(attendance.DateLayout)
			}
			if err := a.attendance.SetAttendance(args[0], date, !absent); err != nil {
				return err
			}
			status := attendance.StatusPresent
			if absent {
				status = attendance.StatusAbsent
			}
			fmt.Printf("%s marked %s on %s\n", args[0], status, date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&absent, "absent", false, "mark absent instead of present")
	return cmd
}
