package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"dayflow/internal/domain/attendance"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derived views: overview, weekly attendance, salary",
	}
	cmd.AddCommand(newReportOverviewCmd(a), newReportWeekCmd(a), newReportSalaryCmd(a))
	return cmd
}

func newReportOverviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard header numbers (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			overview, err := a.reports.Overview(time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("employees:      %d\n", overview.TotalEmployees)
			fmt.Printf("pending leaves: %d\n", overview.PendingLeaves)
			fmt.Printf("present today:  %d\n", overview.PresentToday)
			fmt.Printf("absent today:   %d\n", overview.AbsentToday)
			return nil
		},
	}
}

func newReportWeekCmd(a *app) *cobra.Command {
	var employeeID, date, pdfPath, xlsxPath string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Weekly attendance summary, Monday through Sunday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.requireUser()
			if err != nil {
				return err
			}
			if employeeID == "" {
				employeeID = current.EmployeeID
			}
			if employeeID != current.EmployeeID && !a.gate.IsAdmin() {
				return fmt.Errorf("only admins may view other employees' attendance")
			}

			anchor := time.Now()
			if date != "" {
				anchor, err = time.Parse(attendance.DateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
			}

			if pdfPath != "" {
				if err := a.reports.WeeklyAttendancePDF(employeeID, anchor, pdfPath); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", pdfPath)
			}
			if xlsxPath != "" {
				if err := a.reports.WeeklyAttendanceXLSX(employeeID, anchor, xlsxPath); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", xlsxPath)
			}
			if pdfPath != "" || xlsxPath != "" {
				return nil
			}

			summary, err := a.reports.WeeklyAttendance(employeeID, anchor)
			if err != nil {
				return err
			}

			fmt.Printf("week of %s for %s\n\n", summary.WeekStart, employeeID)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSTATUS\tCHECK IN\tCHECK OUT\tHOURS")
			for _, day := range summary.Days {
				hours := ""
				if day.HoursWorked != nil {
					hours = fmt.Sprintf("%.1f", *day.HoursWorked)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", day.Date, day.Status, day.CheckIn, day.CheckOut, hours)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%d present, %d absent (%s%%), %.1f hours total\n",
				summary.PresentDays, summary.AbsentDays, summary.AttendanceRate, summary.TotalHours)
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id (default the signed-in employee)")
	cmd.Flags().StringVar(&date, "date", "", "any date inside the week (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the summary as a PDF to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the summary as a spreadsheet to this path")
	return cmd
}

func newReportSalaryCmd(a *app) *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Salary totals across the directory (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			if xlsxPath != "" {
				if err := a.reports.SalaryXLSX(xlsxPath); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", xlsxPath)
				return nil
			}

			summary, err := a.reports.Salary()
			if err != nil {
				return err
			}
			fmt.Printf("headcount:     %d\n", summary.Headcount)
			fmt.Printf("total expense: %.2f\n", summary.TotalExpense)
			fmt.Printf("average:       %.2f\n", summary.Average)
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the breakdown as a spreadsheet to this path")
	return cmd
}
