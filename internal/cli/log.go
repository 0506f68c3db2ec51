package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kilupskalvis/qsolog/internal/core"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <callsign>",
	Short: "Log a contact",
	Long: `Record a contact (QSO) in the log, timestamped with the current UTC time.

Frequency and signal reports are pre-filled from the band and mode when not
given. The contact is attached to the default profile unless --profile is set.

Examples:
  qsolog log K1ABC -b 20M -m USB
  qsolog log DL1XYZ -b 40M -f 7.025 -m CW -p 100 -c "nice fist"
  qsolog log JA1AA -b 15M -m FT8 --rst-sent=-10 --rst-rcvd=-12 --profile 2`,
	Args: cobra.ExactArgs(1),
	Run:  runLog,
}

var (
	logBand      string
	logFrequency string
	logMode      string
	logRSTSent   string
	logRSTRcvd   string
	logPower     string
	logComment   string
	logProfile   int64
)

func init() {
	logCmd.Flags().StringVarP(&logBand, "band", "b", "20M", "Band ("+strings.Join(bands, ", ")+")")
	logCmd.Flags().StringVarP(&logFrequency, "freq", "f", "", "Frequency in MHz (default: from band)")
	logCmd.Flags().StringVarP(&logMode, "mode", "m", "SSB", "Mode ("+strings.Join(modes, ", ")+")")
	logCmd.Flags().StringVar(&logRSTSent, "rst-sent", "", "Report sent (default: from mode)")
	logCmd.Flags().StringVar(&logRSTRcvd, "rst-rcvd", "", "Report received (default: from mode)")
	logCmd.Flags().StringVarP(&logPower, "power", "p", "", "Transmit power in watts")
	logCmd.Flags().StringVarP(&logComment, "comment", "c", "", "Comment")
	logCmd.Flags().Int64Var(&logProfile, "profile", 0, "Operator profile id (default: configured default profile)")
}

func runLog(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	band := strings.ToUpper(logBand)
	mode := strings.ToUpper(logMode)

	contact := core.Contact{
		Call:      strings.ToUpper(args[0]),
		Band:      band,
		Frequency: logFrequency,
		Mode:      mode,
		RSTTX:     logRSTSent,
		RSTRX:     logRSTRcvd,
		Power:     logPower,
		Comments:  logComment,
		ProfileID: c.Config.DefaultProfile,
	}
	if contact.Frequency == "" {
		contact.Frequency = defaultFrequency(band)
	}
	if contact.RSTTX == "" {
		contact.RSTTX = defaultRST(mode)
	}
	if contact.RSTRX == "" {
		contact.RSTRX = defaultRST(mode)
	}
	if cmd.Flags().Changed("profile") {
		contact.ProfileID = logProfile
	}

	entry, err := core.LogContact(c.Store, contact)
	if err != nil {
		exitError("failed to log contact: %s", profileHint(err))
	}

	color.New(color.FgGreen).Printf("Logged %s", entry.Call)
	fmt.Printf(" on %s (%s MHz) %s at %s UTC\n", entry.Band, entry.Frequency, entry.Mode, entry.Timestamp.Format("2006-01-02 15:04:05"))
}
