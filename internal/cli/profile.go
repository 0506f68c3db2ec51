package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/kilupskalvis/qsolog/internal/core"
	"github.com/kilupskalvis/qsolog/internal/models"
	"github.com/kilupskalvis/qsolog/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage operator profiles",
	Long: `Operator profiles hold the station details attached to every contact:
callsign, grid square, CQ/ITU zones, DXCC entity and continent.

With no subcommand, lists all profiles. The default profile is marked with *.`,
	Args: cobra.NoArgs,
	Run:  runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a profile",
	Long: `Create a new operator profile. Attributes not given on the command line
are left at their placeholder values and can be changed with 'qsolog profile edit'.

Example:
  qsolog profile add --name Home --call W1AW --grid FN31pr --cqz 5 --ituz 8 --dxcc 291 --cont NA`,
	Args: cobra.NoArgs,
	Run:  runProfileAdd,
}

var profileEditCmd = &cobra.Command{
	Use:               "edit <id>",
	Short:             "Change profile attributes",
	Long:              `Overwrite the attributes given on the command line, keeping the rest.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeProfileIDs,
	Run:               runProfileEdit,
}

var profileDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a profile",
	Long: `Delete an operator profile. Contacts logged against it are kept but are
no longer included in exports.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeProfileIDs,
	Run:               runProfileDelete,
}

var profileUseCmd = &cobra.Command{
	Use:               "use <id>",
	Short:             "Set the default profile for new contacts",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeProfileIDs,
	Run:               runProfileUse,
}

var profileAttrs models.ProfileAttributes

func init() {
	for _, cmd := range []*cobra.Command{profileAddCmd, profileEditCmd} {
		cmd.Flags().StringVar(&profileAttrs.Name, "name", "", "Profile name")
		cmd.Flags().StringVar(&profileAttrs.Call, "call", "", "Station callsign")
		cmd.Flags().StringVar(&profileAttrs.Grid, "grid", "", "Maidenhead grid square")
		cmd.Flags().StringVar(&profileAttrs.CQZ, "cqz", "", "CQ zone")
		cmd.Flags().StringVar(&profileAttrs.ITUZ, "ituz", "", "ITU zone")
		cmd.Flags().StringVar(&profileAttrs.DXCC, "dxcc", "", "DXCC entity code")
		cmd.Flags().StringVar(&profileAttrs.Cont, "cont", "", "Continent (NA, SA, EU, AF, AS, OC, AN)")
	}

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileUseCmd)
}

func runProfileList(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	profiles, err := c.Store.ListProfiles()
	if err != nil {
		exitError("failed to list profiles: %v", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No profiles. Create one with 'qsolog profile add'")
		return
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	for _, p := range profiles {
		marker := "  "
		if p.ID == c.Config.DefaultProfile {
			marker = "* "
		}
		yellow.Printf("%s%-4d", marker, p.ID)
		if p.ID == c.Config.DefaultProfile {
			green.Printf(" %s", p.Label())
		} else {
			fmt.Printf(" %s", p.Label())
		}
		fmt.Printf("  grid=%s cqz=%s ituz=%s dxcc=%s cont=%s\n", p.Grid, p.CQZ, p.ITUZ, p.DXCC, p.Cont)
	}
}

func runProfileAdd(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	attrs := models.PlaceholderAttributes()
	applyChangedAttrs(cmd, &attrs)

	p, err := core.AddProfile(c.Store, &attrs)
	if err != nil {
		exitError("%v", err)
	}

	// The first profile, or one replacing a deleted default, becomes the default
	if _, err := c.Store.GetProfile(c.Config.DefaultProfile); errors.Is(err, store.ErrProfileNotFound) {
		c.Config.DefaultProfile = p.ID
		if err := c.Config.Save(); err != nil {
			exitError("failed to save config: %v", err)
		}
	}

	color.New(color.FgGreen).Printf("Created profile %d", p.ID)
	fmt.Printf(": %s\n", p.Label())
}

func runProfileEdit(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	id := parseProfileID(args[0])

	p, err := core.EditProfile(c.Store, id, func(attrs *models.ProfileAttributes) {
		applyChangedAttrs(cmd, attrs)
	})
	if err != nil {
		exitError("%s", profileHint(err))
	}

	color.New(color.FgGreen).Printf("Updated profile %d", p.ID)
	fmt.Printf(": %s\n", p.Label())
}

func runProfileDelete(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	id := parseProfileID(args[0])
	if err := c.Store.DeleteProfile(id); err != nil {
		exitError("%s", profileHint(err))
	}

	color.New(color.FgGreen).Printf("Deleted profile %d\n", id)
	if id == c.Config.DefaultProfile {
		color.New(color.FgYellow).Println("The default profile no longer exists; choose another with 'qsolog profile use'")
	}
}

func runProfileUse(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	id := parseProfileID(args[0])
	p, err := c.Store.GetProfile(id)
	if err != nil {
		exitError("%s", profileHint(err))
	}

	c.Config.DefaultProfile = id
	if err := c.Config.Save(); err != nil {
		exitError("failed to save config: %v", err)
	}

	color.New(color.FgGreen).Printf("Default profile is now %d", id)
	fmt.Printf(": %s\n", p.Label())
}

// applyChangedAttrs copies only the attribute flags given on the command line
func applyChangedAttrs(cmd *cobra.Command, attrs *models.ProfileAttributes) {
	flags := cmd.Flags()
	set := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	set("name", &attrs.Name, profileAttrs.Name)
	set("call", &attrs.Call, profileAttrs.Call)
	set("grid", &attrs.Grid, profileAttrs.Grid)
	set("cqz", &attrs.CQZ, profileAttrs.CQZ)
	set("ituz", &attrs.ITUZ, profileAttrs.ITUZ)
	set("dxcc", &attrs.DXCC, profileAttrs.DXCC)
	set("cont", &attrs.Cont, profileAttrs.Cont)
}
