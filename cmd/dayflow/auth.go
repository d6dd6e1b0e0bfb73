package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signedIn, err := a.gate.Login(email, password)
			if err != nil {
				return err
			}
			if signedIn == nil {
				return errors.New("invalid email or password")
			}
			fmt.Printf("signed in as %s (%s, %s)\n", signedIn.FullName(), signedIn.EmployeeID, signedIn.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gate.Logout(); err != nil {
				return err
			}
			fmt.Println("signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.gate.Current()
			if err != nil {
				return err
			}
			if current == nil {
				fmt.Println("not signed in")
				return nil
			}
			fmt.Printf("%s <%s>\nemployee id: %s\nrole: %s\n",
				current.FullName(), current.Email, current.EmployeeID, current.Role)
			return nil
		},
	}
}
