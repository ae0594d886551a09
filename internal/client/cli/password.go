package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/internal/validation"
	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a one-time code to reset the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runForgotPassword(cmd.Context(), email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")

	return cmd
}

func (c *Cli) runForgotPassword(ctx context.Context, email string) error {
	email, err := c.inputOr(email, "Email: ")
	if err != nil {
		return err
	}

	resp, err := c.client.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}

	return show(c, resp, func(*api.Empty) {
		c.success("If the account exists, a one-time code has been sent to %s", email)
		c.io.Println("Run 'matrimony reset-password' with the code to set a new password.")
	})
}

type resetOptions struct {
	email     string
	otp       string
	passwords Passwords
}

func (c *Cli) newResetPasswordCmd() *cobra.Command {
	opts := &resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using the one-time code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResetPassword(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.otp, "otp", "", "one-time code from the email")
	addPasswordFlags(cmd, &opts.passwords)

	return cmd
}

func (c *Cli) runResetPassword(ctx context.Context, opts *resetOptions) error {
	email, err := c.inputOr(opts.email, "Email: ")
	if err != nil {
		return err
	}
	otp, err := c.inputOr(opts.otp, "Code: ")
	if err != nil {
		return err
	}

	password, err := c.newPassword(opts.passwords, fmt.Sprintf("New password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return err
	}

	resp, err := c.client.ResetPassword(ctx, api.ResetPasswordRequest{
		Email:       email,
		OTP:         otp,
		NewPassword: password,
	})
	if err != nil {
		return err
	}

	return show(c, resp, func(*api.Empty) {
		c.success("Password updated")
		c.io.Println("Run 'matrimony login' with the new password.")
	})
}
