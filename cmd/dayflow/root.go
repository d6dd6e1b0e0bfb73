package main

import (
	"github.com/spf13/cobra"

	"dayflow/internal/platform/seed"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dayflow",
		Short:         "HR dashboard: directory, attendance, leave and reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newSeedCmd(a),
		newEmployeeCmd(a),
		newCheckinCmd(a),
		newCheckoutCmd(a),
		newAttendanceCmd(a),
		newLeaveCmd(a),
		newReportCmd(a),
	)
	return root
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the starter accounts in the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed.Run(a.cfg, a.employees)
		},
	}
}
