package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayflow/internal/domain/leave"
)

func newLeaveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "File and decide leave requests",
	}
	cmd.AddCommand(
		newLeaveApplyCmd(a),
		newLeaveListCmd(a),
		newLeaveDecideCmd(a, "approve", leave.StatusApproved),
		newLeaveDecideCmd(a, "reject", leave.StatusRejected),
	)
	return cmd
}

func newLeaveApplyCmd(a *app) *cobra.Command {
	var payload leave.SubmitPayload

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "File a leave request for the signed-in employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.requireUser()
			if err != nil {
				return err
			}
			request, err := a.leaves.Submit(current.EmployeeID, current.FullName(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("filed %s leave %s to %s (request %s, %s)\n",
				request.LeaveType, request.StartDate, request.EndDate, request.ID, request.Status)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&payload.LeaveType, "type", "", "sick, casual, earned, maternity or paternity")
	flags.StringVar(&payload.StartDate, "start", "", "first day (YYYY-MM-DD)")
	flags.StringVar(&payload.EndDate, "end", "", "last day (YYYY-MM-DD)")
	flags.StringVar(&payload.Reason, "reason", "", "reason for the request")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newLeaveListCmd(a *app) *cobra.Command {
	var all bool
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leave requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.requireUser()
			if err != nil {
				return err
			}

			var requests []leave.Request
			if all {
				if err := a.requireAdmin(); err != nil {
					return err
				}
				requests, err = a.leaves.ListAll()
			} else {
				requests, err = a.leaves.ListByEmployee(current.EmployeeID)
			}
			if err != nil {
				return err
			}
			if status != "" {
				requests = leave.FilterByStatus(requests, status)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REQUEST ID\tEMPLOYEE\tTYPE\tFROM\tTO\tAPPLIED\tSTATUS")
			for _, req := range requests {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					req.ID, req.EmployeeName, req.LeaveType, req.StartDate, req.EndDate, req.AppliedOn, req.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every employee's requests (admin)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status: pending, approved or rejected")
	return cmd
}

func newLeaveDecideCmd(a *app, verb, status string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <requestId>",
		Short: fmt.Sprintf("Mark a leave request %s (admin)", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			if err := a.leaves.SetStatus(args[0], status); err != nil {
				return err
			}
			fmt.Printf("request %s marked %s\n", args[0], status)
			return nil
		},
	}
}
