package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pttech/storefront/user/pkg/request"
)

func authCommand(svc services) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Login, logout and account management",
	}

	login := request.Login{}
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.user.Login(cmd.Context(), login)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as userId=%s\n", result.UserID)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&login.Email, "email", "", "account email")
	loginCmd.Flags().StringVar(&login.Password, "password", "", "account password")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.user.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}

	register := request.Register{}
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.user.Register(cmd.Context(), register); err != nil {
				return err
			}
			fmt.Println("registered, you can now login")
			return nil
		},
	}
	registerCmd.Flags().StringVar(&register.Email, "email", "", "account email")
	registerCmd.Flags().StringVar(&register.PhoneNumber, "phone", "", "phone number")
	registerCmd.Flags().StringVar(&register.Password, "password", "", "account password")
	registerCmd.Flags().BoolVar(&register.SubscribedToEmails, "subscribe", false, "subscribe to emails")

	forgot := request.ForgotPassword{}
	forgotCmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset mail",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.user.ForgotPassword(cmd.Context(), forgot); err != nil {
				return err
			}
			fmt.Println("reset mail requested")
			return nil
		},
	}
	forgotCmd.Flags().StringVar(&forgot.Email, "email", "", "account email")

	reset := request.ResetPassword{}
	resetCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset the password with a mailed token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.user.ResetPassword(cmd.Context(), reset); err != nil {
				return err
			}
			fmt.Println("password reset")
			return nil
		},
	}
	resetCmd.Flags().StringVar(&reset.Email, "email", "", "account email")
	resetCmd.Flags().StringVar(&reset.Token, "token", "", "reset token")
	resetCmd.Flags().StringVar(&reset.NewPassword, "password", "", "new password")

	authCmd.AddCommand(loginCmd, logoutCmd, registerCmd, forgotCmd, resetCmd)
	return authCmd
}
