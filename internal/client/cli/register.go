package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/internal/validation"
	"github.com/iudanet/matrimony-client/pkg/api"
)

type registerOptions struct {
	req       api.RegisterRequest
	passwords Passwords
}

func (c *Cli) newRegisterCmd() *cobra.Command {
	opts := &registerOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegister(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.req.Email, "email", "", "account email")
	f.StringVar(&opts.req.FirstName, "first-name", "", "first name")
	f.StringVar(&opts.req.LastName, "last-name", "", "last name")
	f.StringVar(&opts.req.Gender, "gender", "", "male, female or other")
	f.StringVar(&opts.req.DateOfBirth, "dob", "", "date of birth, YYYY-MM-DD")
	f.StringVar(&opts.req.Phone, "phone", "", "phone number")
	addPasswordFlags(cmd, &opts.passwords)

	return cmd
}

func (c *Cli) runRegister(ctx context.Context, opts *registerOptions) error {
	c.header("Registration")

	req := opts.req
	var err error

	if req.Email, err = c.inputOr(req.Email, "Email: "); err != nil {
		return err
	}
	if req.FirstName, err = c.inputOr(req.FirstName, "First name: "); err != nil {
		return err
	}

	req.Password, err = c.newPassword(opts.passwords, fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return err
	}

	resp, err := c.client.Register(ctx, req)
	if err != nil {
		return err
	}

	return show(c, resp, func(result *api.RegisterResult) {
		c.success("Registration successful!")
		c.io.Printf("User ID: %s\n", result.User.ID)
		c.io.Printf("Email:   %s\n", result.User.Email)
		c.io.Println()
		c.io.Println("Please run 'matrimony login' to start using the service.")
	})
}

// newPassword читает новый пароль. Интерактивный ввод требует подтверждения.
func (c *Cli) newPassword(passwords Passwords, prompt string) (string, error) {
	interactive := passwords == (Passwords{}) && !envPasswordSet()

	password, err := c.getPassword(passwords, prompt)
	if err != nil {
		return "", err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	if interactive {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return "", fmt.Errorf("failed to read confirmation: %w", err)
		}
		if confirm != password {
			return "", fmt.Errorf("passwords do not match")
		}
	}

	return password, nil
}
