package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and become the current user",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out the current user",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the current user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var loginPassword string

func init() {
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	password := loginPassword
	if password == "" {
		var err error
		if password, err = newPrompter(cmd).password("Password: "); err != nil {
			return err
		}
	}

	user, err := sessionService.SignIn(cmd.Context(), args[0], password)
	if err != nil {
		return err
	}

	cmd.Printf("Signed in as %s\n", user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	if err := sessionService.SignOut(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	session, err := sessionService.Current(cmd.Context())
	if err != nil {
		return err
	}
	if session == nil {
		cmd.Println("Not signed in")
		return nil
	}
	cmd.Println(session.Email)
	return nil
}
