package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/iudanet/matrimony-client/internal/client/api"
	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newMatchesCmd() *cobra.Command {
	var page api.Pagination

	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List mutual matches",
		Long: `Without a subcommand lists members who liked you back.
Use 'matches potential' to browse candidates and 'matches like' to swipe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetMatches(cmd.Context(), page)
			if err != nil {
				return err
			}
			return show(c, resp, func(list *api.MatchList) {
				c.header("Matches")
				c.printMatches(list, "No matches yet. Try 'matrimony matches potential'.")
			})
		},
	}
	addPaginationFlags(cmd, &page)

	cmd.AddCommand(
		c.newPotentialCmd(),
		c.newSwipeCmd("like", "Like a member", (*apiclient.Client).LikeProfile),
		c.newSwipeCmd("dislike", "Hide a member from potential matches", (*apiclient.Client).DislikeProfile),
	)

	return cmd
}

func (c *Cli) newPotentialCmd() *cobra.Command {
	var f api.MatchFilters

	cmd := &cobra.Command{
		Use:     "potential",
		Aliases: []string{"browse"},
		Short:   "Browse candidate profiles",
		Example: `  matrimony matches potential --age-min 25 --age-max 32 --city Pune`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetPotentialMatches(cmd.Context(), f)
			if err != nil {
				return err
			}
			return show(c, resp, func(list *api.MatchList) {
				c.header("Potential Matches")
				c.printMatches(list, "No candidates match the filters.")
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.AgeMin, "age-min", 0, "minimum age")
	flags.IntVar(&f.AgeMax, "age-max", 0, "maximum age")
	flags.IntVar(&f.HeightMin, "height-min", 0, "minimum height in cm")
	flags.IntVar(&f.HeightMax, "height-max", 0, "maximum height in cm")
	flags.StringVar(&f.Religion, "religion", "", "religion")
	flags.StringVar(&f.Caste, "caste", "", "caste")
	flags.StringVar(&f.City, "city", "", "city")
	flags.StringVar(&f.Education, "education", "", "education")
	flags.StringVar(&f.Occupation, "occupation", "", "occupation")
	flags.StringVar(&f.MotherTongue, "mother-tongue", "", "mother tongue")
	addPaginationFlags(cmd, &f.Pagination)

	return cmd
}

// swipeFunc метод клиента; c.client создается только в setup
type swipeFunc func(c *apiclient.Client, ctx context.Context, userID string) (*api.Response[api.SwipeResult], error)

func (c *Cli) newSwipeCmd(use, short string, swipe swipeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := swipe(c.client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return show(c, resp, func(r *api.SwipeResult) {
				switch {
				case r.IsMatched:
					c.success("It's a match! Conversation: %s", r.MatchID)
				case use == "like":
					c.success("Liked %s", args[0])
				default:
					c.success("Skipped %s", args[0])
				}
			})
		},
	}
}

func (c *Cli) printMatches(list *api.MatchList, empty string) {
	if len(list.Matches) == 0 {
		c.io.Println(empty)
		return
	}
	for _, m := range list.Matches {
		line := fmt.Sprintf("%s  %s", m.Profile.ID, profileLine(m.Profile))
		if m.Score > 0 {
			line += dimColor.Sprintf("  (%.0f%%)", m.Score)
		}
		if !m.MatchedAt.IsZero() {
			line += dimColor.Sprintf("  matched %s", formatTime(m.MatchedAt))
		}
		c.io.Println(line)
	}
	c.printPage(len(list.Matches), list.TotalCount, list.HasMore)
}
