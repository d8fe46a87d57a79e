package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pttech/storefront/user/pkg/request"
)

func profileCommand(svc services) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update the signed-in profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := svc.user.FindProfile(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(user)
		},
	}

	update := request.UpdateProfile{}
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update the signed-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := svc.user.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}
			if err := printJson(user); err != nil {
				return err
			}
			fmt.Println("profile updated")
			return nil
		},
	}
	updateCmd.Flags().StringVar(&update.Email, "email", "", "account email")
	updateCmd.Flags().StringVar(&update.PhoneNumber, "phone", "", "phone number")
	updateCmd.Flags().StringVar(&update.Password, "password", "", "new password")
	updateCmd.Flags().StringVar(&update.Avatar, "avatar", "", "avatar url")
	updateCmd.Flags().StringVar(&update.Address.Street, "street", "", "street")
	updateCmd.Flags().StringVar(&update.Address.Communes, "communes", "", "communes")
	updateCmd.Flags().StringVar(&update.Address.District, "district", "", "district")
	updateCmd.Flags().StringVar(&update.Address.City, "city", "", "city")
	updateCmd.Flags().StringVar(&update.Address.Country, "country", "", "country")
	updateCmd.Flags().BoolVar(&update.SubscribedToEmails, "subscribe", false, "subscribe to emails")

	profileCmd.AddCommand(showCmd, updateCmd)
	return profileCmd
}
