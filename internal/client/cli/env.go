package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/matrimony-client/internal/config"
)

func (c *Cli) newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "env",
		Short:       "List supported environment variables",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c.io.Println(config.Usage())
			c.io.Printf("\n  %s string\n    \tpassword for login, register and reset-password\n", EnvPassword)
			return nil
		},
	}
}
