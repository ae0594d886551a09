package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

func (c *Cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and delete the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogout(cmd.Context())
		},
	}
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.header("Logout")

	resp, err := c.client.Logout(ctx)
	if err != nil {
		// Ошибка сервера не мешает выходу, если локальная сессия удалена
		if _, sessionErr := c.client.Session(ctx); !errors.Is(sessionErr, storage.ErrSessionNotFound) {
			return err
		}
		c.warn("Server logout failed: %v", err)
		c.io.Println("Your local session has been deleted anyway.")
		return nil
	}

	if !resp.Success {
		c.warn("Server answered: %s", resp.Message)
	}

	c.success("Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
