package cli

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/iudanet/matrimony-client/internal/client/api"
	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newMasterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master",
		Short: "Show reference data used in profiles and filters",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		c.newMasterListCmd("religions", "Religions", (*apiclient.Client).GetReligions),
		c.newMasterListCmd("education", "Education levels", (*apiclient.Client).GetEducationLevels),
		c.newMasterListCmd("occupations", "Occupations", (*apiclient.Client).GetOccupations),
		c.newCastesCmd(),
		c.newIncomeRangesCmd(),
	)

	return cmd
}

type masterListFunc func(c *apiclient.Client, ctx context.Context) (*api.Response[[]api.MasterItem], error)

func (c *Cli) newMasterListCmd(use, title string, list masterListFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "List " + title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := list(c.client, cmd.Context())
			if err != nil {
				return err
			}
			return show(c, resp, func(items *[]api.MasterItem) {
				c.header(title)
				for _, item := range *items {
					c.io.Printf("%-12s %s\n", item.ID, item.Name)
				}
			})
		},
	}
}

func (c *Cli) newCastesCmd() *cobra.Command {
	var religionID string

	cmd := &cobra.Command{
		Use:   "castes",
		Short: "List castes, optionally of one religion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetCastes(cmd.Context(), religionID)
			if err != nil {
				return err
			}
			return show(c, resp, func(items *[]api.Caste) {
				c.header("Castes")
				for _, item := range *items {
					c.io.Printf("%-12s %-20s %s\n", item.ID, item.Name, dimColor.Sprint(item.ReligionID))
				}
			})
		},
	}
	cmd.Flags().StringVar(&religionID, "religion", "", "religion id")

	return cmd
}

func (c *Cli) newIncomeRangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "income-ranges",
		Short: "List annual income ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetIncomeRanges(cmd.Context())
			if err != nil {
				return err
			}
			return show(c, resp, func(items *[]api.IncomeRange) {
				c.header("Income ranges")
				for _, item := range *items {
					c.io.Printf("%-12s %s\n", item.ID, item.Label)
				}
			})
		},
	}
}
