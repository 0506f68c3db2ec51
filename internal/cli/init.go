package cli

import (
	"fmt"

	"github.com/kilupskalvis/qsolog/internal/config"
	"github.com/kilupskalvis/qsolog/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the qsolog directory",
	Long: `Create the qsolog directory (~/.qsolog, or $QSOLOG_HOME) with a default
configuration and an empty log database.

An existing database from an older release is upgraded in place.`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	cfg, err := config.Initialize()
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to create store: %v", err)
	}
	defer st.Close()

	if err := st.Initialize(); err != nil {
		exitError("failed to initialize store: %v", err)
	}

	profiles, err := st.ListProfiles()
	if err != nil {
		exitError("failed to list profiles: %v", err)
	}

	fmt.Printf("Initialized qsolog in %s\n", cfg.Path())

	if len(profiles) == 0 {
		fmt.Printf("\nRun 'qsolog profile add --name Home --call <your call>' to create your station profile.\n")
		return
	}

	// Upgraded an older database; default to the lowest profile
	cfg.DefaultProfile = profiles[0].ID
	if err := cfg.Save(); err != nil {
		exitError("failed to save config: %v", err)
	}
	fmt.Printf("Found %d existing profiles, default profile is %d\n", len(profiles), cfg.DefaultProfile)
}
