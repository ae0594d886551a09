package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the saved refresh token for a new access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRefresh(cmd.Context())
		},
	}
}

func (c *Cli) runRefresh(ctx context.Context) error {
	resp, err := c.client.RefreshToken(ctx)
	if err != nil {
		return err
	}

	return show(c, resp, func(result *api.RefreshResult) {
		c.success("Access token refreshed")
		if result.ExpiresIn > 0 {
			c.io.Printf("Expires in: %s\n", time.Duration(result.ExpiresIn)*time.Second)
		}
	})
}
