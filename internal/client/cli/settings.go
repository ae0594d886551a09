package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (c *Cli) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show account settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetSettings(cmd.Context())
			if err != nil {
				return err
			}
			return show(c, resp, func(s *api.Settings) {
				c.header("Settings")
				c.printSettings(s)
			})
		},
	}
	cmd.AddCommand(c.newSettingsSetCmd())

	return cmd
}

type settingsOptions struct {
	visibility  string
	emailNotify bool
	pushNotify  bool
	showPhotos  bool
	showContact bool
	religions   []string
	cities      []string
	ageMin      int
	ageMax      int
}

func (c *Cli) newSettingsSetCmd() *cobra.Command {
	opts := &settingsOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings given by flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSettingsSet(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.visibility, "visibility", "", "profile visibility: all, matches or none")
	f.BoolVar(&opts.emailNotify, "email-notifications", false, "email notifications")
	f.BoolVar(&opts.pushNotify, "push-notifications", false, "push notifications")
	f.BoolVar(&opts.showPhotos, "show-photos", false, "show photos to others")
	f.BoolVar(&opts.showContact, "show-contact", false, "show contact info to others")
	f.StringSliceVar(&opts.religions, "pref-religion", nil, "preferred religions")
	f.StringSliceVar(&opts.cities, "pref-city", nil, "preferred cities")
	f.IntVar(&opts.ageMin, "pref-age-min", 0, "preferred minimum age")
	f.IntVar(&opts.ageMax, "pref-age-max", 0, "preferred maximum age")

	return cmd
}

// runSettingsSet читает текущие настройки и отправляет их целиком
// с изменениями из заданных флагов
func (c *Cli) runSettingsSet(cmd *cobra.Command, opts *settingsOptions) error {
	ctx := cmd.Context()

	flags := cmd.Flags()
	changed := false
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		changed = changed || f.Changed
	})
	if !changed {
		return cmd.Usage()
	}

	current, err := c.currentSettings(ctx)
	if err != nil {
		return err
	}
	if flags.Changed("visibility") {
		current.Privacy.ProfileVisibility = opts.visibility
	}
	if flags.Changed("email-notifications") {
		current.Notifications.Email = opts.emailNotify
	}
	if flags.Changed("push-notifications") {
		current.Notifications.Push = opts.pushNotify
	}
	if flags.Changed("show-photos") {
		current.Privacy.ShowPhotos = opts.showPhotos
	}
	if flags.Changed("show-contact") {
		current.Privacy.ShowContactInfo = opts.showContact
	}
	if flags.Changed("pref-religion") {
		current.PartnerPreferences.Religions = opts.religions
	}
	if flags.Changed("pref-city") {
		current.PartnerPreferences.Cities = opts.cities
	}
	if flags.Changed("pref-age-min") {
		current.PartnerPreferences.AgeMin = opts.ageMin
	}
	if flags.Changed("pref-age-max") {
		current.PartnerPreferences.AgeMax = opts.ageMax
	}

	resp, err := c.client.UpdateSettings(ctx, *current)
	if err != nil {
		return err
	}

	return show(c, resp, func(s *api.Settings) {
		c.success("Settings updated")
		c.io.Println()
		c.printSettings(s)
	})
}

func (c *Cli) currentSettings(ctx context.Context) (*api.Settings, error) {
	resp, err := c.client.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

func (c *Cli) printSettings(s *api.Settings) {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	c.io.Println("Notifications:")
	c.io.Printf("  email %s, push %s, matches %s, messages %s, requests %s\n",
		onOff(s.Notifications.Email), onOff(s.Notifications.Push), onOff(s.Notifications.Matches),
		onOff(s.Notifications.Messages), onOff(s.Notifications.Requests))

	c.io.Println("Privacy:")
	c.io.Printf("  visibility %s, photos %s, contact info %s\n",
		s.Privacy.ProfileVisibility, onOff(s.Privacy.ShowPhotos), onOff(s.Privacy.ShowContactInfo))

	p := s.PartnerPreferences
	c.io.Println("Partner preferences:")
	if p.AgeMin > 0 || p.AgeMax > 0 {
		c.io.Printf("  age %d-%d\n", p.AgeMin, p.AgeMax)
	}
	if p.HeightMin > 0 || p.HeightMax > 0 {
		c.io.Printf("  height %d-%d cm\n", p.HeightMin, p.HeightMax)
	}
	if len(p.Religions) > 0 {
		c.io.Printf("  religions %s\n", strings.Join(p.Religions, ", "))
	}
	if len(p.Cities) > 0 {
		c.io.Printf("  cities %s\n", strings.Join(p.Cities, ", "))
	}
}
