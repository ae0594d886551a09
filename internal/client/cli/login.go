package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/pkg/api"
)

type loginOptions struct {
	email     string
	passwords Passwords
}

func (c *Cli) newLoginCmd() *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "account email")
	addPasswordFlags(cmd, &opts.passwords)

	return cmd
}

func (c *Cli) runLogin(ctx context.Context, opts *loginOptions) error {
	c.header("Login")

	email, err := c.inputOr(opts.email, "Email: ")
	if err != nil {
		return err
	}

	password, err := c.getPassword(opts.passwords, "Password: ")
	if err != nil {
		return err
	}

	resp, err := c.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	return show(c, resp, func(result *api.LoginResult) {
		c.success("Login successful!")
		c.io.Printf("User ID: %s\n", result.User.ID)
		if result.ExpiresIn > 0 {
			c.io.Printf("Access token expires in: %s\n", time.Duration(result.ExpiresIn)*time.Second)
		}
		c.io.Println()
		c.io.Println("Your session has been saved.")
	})
}

func envPasswordSet() bool {
	return os.Getenv(EnvPassword) != ""
}
