// netfault is the inspection CLI of the fault-injection analysis framework.
// It reads graph snapshots produced by the netlist frontend and reports gate
// statistics, register placement, and module ports, and it relabels cloned
// subgraphs for graph composition.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/synthara-eda/netfault/pkg/logging"
	"github.com/synthara-eda/netfault/pkg/version"
)

// versionedPackages are the modules listed by the version subcommand
var versionedPackages = []string{
	"github.com/synthara-eda/netfault",
	"github.com/spf13/cobra",
	"gopkg.in/yaml.v3",
	"github.com/prometheus/client_golang",
}

var (
	flagLogLevel string
	flagJSONLog  bool
	flagWidth    int

	log logging.Logger
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "netfault",
		Short:         "Inspect and transform gate-level netlist graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.ParseLevel(flagLogLevel)
			if flagJSONLog {
				log = logging.NewJSONLogger(os.Stderr, level)
			} else {
				log = logging.NewConsoleLogger(os.Stderr, level)
			}
			log.Debug("logger ready", logging.RunID(uuid.NewString()))
		},
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flagJSONLog, "json-log", false, "emit logs as JSON")
	root.PersistentFlags().IntVar(&flagWidth, "width", 0, "report width (0: detect terminal, fallback 80)")

	root.AddCommand(
		newStatsCommand(),
		newRegistersCommand(),
		newPortsCommand(),
		newRenameCommand(),
		newServeCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tool revision and dependency versions, then exit",
		Run: func(cmd *cobra.Command, args []string) {
			version.ShowAndExit(os.Args[0], versionedPackages)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "netfault: %v\n", err)
		os.Exit(1)
	}
}
