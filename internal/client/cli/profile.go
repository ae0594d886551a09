package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
		Long: `Without a subcommand prints your own profile. The profile is served
from the local cache when one is present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProfileShow(cmd.Context())
		},
	}

	cmd.AddCommand(
		c.newProfileUpdateCmd(),
		c.newProfileViewCmd(),
	)

	return cmd
}

func (c *Cli) runProfileShow(ctx context.Context) error {
	resp, err := c.client.GetUserProfile(ctx)
	if err != nil {
		return err
	}

	return show(c, resp, func(p *api.UserProfile) {
		c.header("My Profile")
		c.printProfile(p)
	})
}

// profileFields флаги команды update в порядке вывода справки
var profileFields = []struct {
	flag  string
	usage string
	field func(*api.ProfileUpdate) **string
}{
	{"first-name", "first name", func(u *api.ProfileUpdate) **string { return &u.FirstName }},
	{"last-name", "last name", func(u *api.ProfileUpdate) **string { return &u.LastName }},
	{"gender", "male, female or other", func(u *api.ProfileUpdate) **string { return &u.Gender }},
	{"dob", "date of birth, YYYY-MM-DD", func(u *api.ProfileUpdate) **string { return &u.DateOfBirth }},
	{"marital-status", "marital status", func(u *api.ProfileUpdate) **string { return &u.MaritalStatus }},
	{"religion", "religion", func(u *api.ProfileUpdate) **string { return &u.Religion }},
	{"caste", "caste", func(u *api.ProfileUpdate) **string { return &u.Caste }},
	{"mother-tongue", "mother tongue", func(u *api.ProfileUpdate) **string { return &u.MotherTongue }},
	{"education", "education", func(u *api.ProfileUpdate) **string { return &u.Education }},
	{"occupation", "occupation", func(u *api.ProfileUpdate) **string { return &u.Occupation }},
	{"income", "annual income", func(u *api.ProfileUpdate) **string { return &u.AnnualIncome }},
	{"city", "city", func(u *api.ProfileUpdate) **string { return &u.City }},
	{"state", "state", func(u *api.ProfileUpdate) **string { return &u.State }},
	{"country", "country", func(u *api.ProfileUpdate) **string { return &u.Country }},
	{"about", "free text about yourself", func(u *api.ProfileUpdate) **string { return &u.About }},
}

func (c *Cli) newProfileUpdateCmd() *cobra.Command {
	values := make(map[string]*string, len(profileFields))
	var (
		height int
		photos []string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields given by flags",
		Example: `  matrimony profile update --city Pune --occupation Engineer
  matrimony profile update --about ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			update, changed := buildProfileUpdate(cmd.Flags(), values, height, photos)
			if !changed {
				return cmd.Usage()
			}
			return c.runProfileUpdate(cmd.Context(), update)
		},
	}

	for _, f := range profileFields {
		values[f.flag] = cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().IntVar(&height, "height", 0, "height in centimetres")
	cmd.Flags().StringSliceVar(&photos, "photo", nil, "photo URL, repeat for several")

	return cmd
}

// buildProfileUpdate заполняет только поля, флаги которых были заданы
func buildProfileUpdate(flags *pflag.FlagSet, values map[string]*string, height int, photos []string) (api.ProfileUpdate, bool) {
	var (
		update  api.ProfileUpdate
		changed bool
	)

	for _, f := range profileFields {
		if flags.Changed(f.flag) {
			v := *values[f.flag]
			*f.field(&update) = &v
			changed = true
		}
	}
	if flags.Changed("height") {
		update.Height = &height
		changed = true
	}
	if flags.Changed("photo") {
		update.Photos = photos
		changed = true
	}

	return update, changed
}

func (c *Cli) runProfileUpdate(ctx context.Context, update api.ProfileUpdate) error {
	resp, err := c.client.UpdateUserProfile(ctx, update)
	if err != nil {
		return err
	}

	return show(c, resp, func(p *api.UserProfile) {
		c.success("Profile updated")
		c.io.Println()
		c.printProfile(p)
	})
}

func (c *Cli) newProfileViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <user-id>",
		Short: "Show another member's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetProfileByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return show(c, resp, func(p *api.UserProfile) {
				c.header("Profile")
				c.printProfile(p)
			})
		},
	}
}

func (c *Cli) newSameCityCmd() *cobra.Command {
	var page api.Pagination

	cmd := &cobra.Command{
		Use:   "same-city",
		Short: "List members from your city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetSameCityUsers(cmd.Context(), page)
			if err != nil {
				return err
			}
			return show(c, resp, func(list *api.UserList) {
				c.header("Members in your city")
				if len(list.Users) == 0 {
					c.io.Println("No members found.")
					return
				}
				for _, u := range list.Users {
					c.io.Printf("%s  %s\n", u.ID, profileLine(u))
				}
				c.printPage(len(list.Users), list.TotalCount, list.HasMore)
			})
		},
	}
	addPaginationFlags(cmd, &page)

	return cmd
}

func addPaginationFlags(cmd *cobra.Command, p *api.Pagination) {
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "page size, server default when 0")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "number of items to skip")
}
