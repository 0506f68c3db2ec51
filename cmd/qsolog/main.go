// Command qsolog is an amateur radio contact logger with ADIF export.
package main

import (
	"os"

	"github.com/kilupskalvis/qsolog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
