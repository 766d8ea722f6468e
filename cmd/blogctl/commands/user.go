package commands

import (
	"errors"
	"os"
	"strings"

	"github.com/mx-space/blog/cmd/blogctl/output"
	"github.com/spf13/cobra"
)

// EnvSuperuserPassword supplies the password when --password is not given.
const EnvSuperuserPassword = "BLOG_SUPERUSER_PASSWORD"

var (
	suUsername string
	suEmail    string
	suPassword string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create an administrator account",
	Long: `Create an active staff account with every permission.

Examples:
  blogctl createsuperuser --username admin --email admin@example.com --password secret
  BLOG_SUPERUSER_PASSWORD=secret blogctl createsuperuser --username admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := suPassword
		if password == "" {
			password = os.Getenv(EnvSuperuserPassword)
		}
		if strings.TrimSpace(suUsername) == "" {
			return errors.New("--username is required")
		}
		if password == "" {
			return errors.New("--password or " + EnvSuperuserPassword + " is required")
		}

		a, done, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer done()

		u, err := a.Users.CreateSuperuser(suUsername, suEmail, password)
		if err != nil {
			return err
		}
		output.Success(cmd.OutOrStdout(), "Superuser %q created (id %d)", u.Username, u.ID)
		return nil
	},
}

var changePasswordCmd = &cobra.Command{
	Use:   "changepassword USERNAME",
	Short: "Set a new password for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := suPassword
		if password == "" {
			password = os.Getenv(EnvSuperuserPassword)
		}
		if password == "" {
			return errors.New("--password or " + EnvSuperuserPassword + " is required")
		}

		a, done, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer done()

		u, err := a.Users.GetByUsername(args[0])
		if err != nil {
			return err
		}
		if u == nil {
			return errors.New("user " + args[0] + " does not exist")
		}
		if err := a.Users.SetPassword(u.ID, password); err != nil {
			return err
		}
		output.Success(cmd.OutOrStdout(), "Password changed for %q", u.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createSuperuserCmd, changePasswordCmd)

	createSuperuserCmd.Flags().StringVar(&suUsername, "username", "", "Login name")
	createSuperuserCmd.Flags().StringVar(&suEmail, "email", "", "Email address")
	createSuperuserCmd.Flags().StringVar(&suPassword, "password", "", "Password")
	changePasswordCmd.Flags().StringVar(&suPassword, "password", "", "New password")
}
