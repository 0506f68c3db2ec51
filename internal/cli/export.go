package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/kilupskalvis/qsolog/internal/core"
	"github.com/kilupskalvis/qsolog/internal/models"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the log as ADIF",
	Long: `Write logged contacts to an ADIF (.adi) file, newest first.

--start and --end are inclusive UTC bounds in the form "YYYY-MM-DD HH:MM:SS".
Either may be omitted. Contacts whose profile has been deleted are skipped.

Examples:
  qsolog export -o all.adi
  qsolog export -o january.adi --start "2024-01-01 00:00:00" --end "2024-01-31 23:59:59"`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

var (
	exportOutput string
	exportStart  string
	exportEnd    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Destination file (relative to the configured export directory)")
	exportCmd.Flags().StringVar(&exportStart, "start", "", "Earliest timestamp to include")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "Latest timestamp to include")
	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	result, err := core.Export(c.Store, core.ExportRequest{
		Start: exportStart,
		End:   exportEnd,
		Path:  c.Config.ResolveExportPath(exportOutput),
	})
	if errors.Is(err, models.ErrInvalidTimestamp) {
		exitError("%v (format is %q)", err, models.TimestampLayout)
	}
	if err != nil {
		exitError("export failed: %v", err)
	}

	color.New(color.FgGreen).Printf("Exported %d contacts", result.Records)
	fmt.Printf(" to %s\n", result.Path)
}
