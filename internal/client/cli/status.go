package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

type statusReport struct {
	ProfileCachedAt *time.Time `json:"profileCachedAt,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	UserID          string     `json:"userId,omitempty"`
	Server          string     `json:"server"`
	Driver          string     `json:"driver"`
	Authenticated   bool       `json:"authenticated"`
	HasRefreshToken bool       `json:"hasRefreshToken"`
}

func (c *Cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the local session and cache state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus(cmd.Context())
		},
	}
}

func (c *Cli) runStatus(ctx context.Context) error {
	report, err := c.buildStatus(ctx)
	if err != nil {
		return err
	}

	if c.flags.json {
		return c.printJSON(report)
	}

	c.header("Session Status")
	c.io.Printf("Server:  %s\n", report.Server)
	c.io.Printf("Storage: %s\n", report.Driver)
	c.io.Println()

	if report.UserID == "" {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'matrimony login' to authenticate.")
		return nil
	}

	c.io.Printf("User ID: %s\n", report.UserID)
	if report.ExpiresAt != nil {
		c.io.Printf("Token expires: %s\n", report.ExpiresAt.Format(time.RFC3339))
	}

	if report.Authenticated {
		c.success("Status: Authenticated")
		if report.ExpiresAt != nil {
			c.io.Printf("Time remaining: %s\n", time.Until(*report.ExpiresAt).Round(time.Second))
		}
	} else {
		c.warn("Token has expired.")
		if report.HasRefreshToken {
			c.io.Println("Run 'matrimony refresh' to get a new access token.")
		} else {
			c.io.Println("Run 'matrimony login' to authenticate again.")
		}
	}

	c.io.Println()
	if report.ProfileCachedAt != nil {
		c.io.Printf("Profile cached: %s ago\n", time.Since(*report.ProfileCachedAt).Round(time.Second))
	} else {
		c.io.Println("Profile cached: no")
	}

	return nil
}

func (c *Cli) buildStatus(ctx context.Context) (*statusReport, error) {
	report := &statusReport{
		Server: c.cfg.ServerURL,
		Driver: c.cfg.Storage.Driver,
	}

	session, err := c.client.Session(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return report, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	report.UserID = session.UserID
	report.HasRefreshToken = session.RefreshToken != ""
	if session.ExpiresAt > 0 {
		exp := time.Unix(session.ExpiresAt, 0)
		report.ExpiresAt = &exp
	}

	report.Authenticated, err = c.client.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check authentication: %w", err)
	}

	cached, err := c.store.GetProfile(ctx)
	switch {
	case err == nil:
		report.ProfileCachedAt = &cached.CachedAt
	case !errors.Is(err, storage.ErrProfileNotFound):
		c.logger.Warn("failed to read cached profile", "error", err)
	}

	return report, nil
}
