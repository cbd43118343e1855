package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create a user account",
	Long: `Create a user account. The password is hashed before it is stored.

Without --password you are prompted for the password twice.

Examples:
  shopdesk user register ana@example.com
  shopdesk user register ana@example.com --password s3cret`,
	Args: cobra.ExactArgs(1),
	RunE: runUserRegister,
}

var userShowCmd = &cobra.Command{
	Use:   "show [email]",
	Short: "Show a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserShow,
}

var userRegisterPassword string

func init() {
	userRegisterCmd.Flags().StringVar(&userRegisterPassword, "password", "", "Password (prompted when omitted)")

	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userShowCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserRegister(cmd *cobra.Command, args []string) error {
	if userService == nil {
		return errors.New("user service not configured")
	}
	email := args[0]

	password := userRegisterPassword
	if password == "" {
		p := newPrompter(cmd)
		var err error
		if password, err = p.password("Password: "); err != nil {
			return err
		}
		confirm, err := p.password("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return domain.ErrPasswordMismatch
		}
	}

	if err := userService.Register(cmd.Context(), email, password); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return fmt.Errorf("user %s already exists", email)
		}
		return err
	}

	cmd.Printf("Registered %s\n", email)
	return nil
}

func runUserShow(cmd *cobra.Command, args []string) error {
	if userService == nil {
		return errors.New("user service not configured")
	}

	user, err := userService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if user == nil {
		cmd.Printf("No user with email %s\n", args[0])
		return nil
	}

	cmd.Printf("ID:    %d\n", user.ID)
	cmd.Printf("Email: %s\n", user.Email)
	return nil
}
