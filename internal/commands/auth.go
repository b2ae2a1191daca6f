package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCommand() *cobra.Command {
	var name, email, password, confirm string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.users.Register(name, email, password, confirm)
			if err != nil {
				return err
			}
			// Registration starts a session straight away.
			if err := a.session.Start(user); err != nil {
				return err
			}
			fmt.Printf("Welcome, %s! Your account is ready.\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "password, 6+ characters (required)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm")

	return cmd
}

func newLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.users.FindByCredentials(email, password)
			if err != nil {
				return err
			}
			if err := a.session.Start(user); err != nil {
				return err
			}
			fmt.Printf("Welcome back, %s!\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.session.End(); err != nil {
				return err
			}
			// Stored ledger data survives; only the in-memory view resets.
			a.ledger.Reset()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.requireUser()
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
}
