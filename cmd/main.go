package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	rootCmd := buildRootCommand()
	rootCmd.AddCommand(buildPathsCommand())
	rootCmd.AddCommand(buildBugReportCommand())
	rootCmd.AddCommand(buildLanguagesCommand())
	rootCmd.AddCommand(buildSysInfoCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rpd-support",
		Short: "Support tooling for Rapid Photo Downloader installations",
		Long: `rpd-support bundles the support helpers of Rapid Photo Downloader.

Commands:
  paths      Show the shortest unique display snippet for each path
  bugreport  Package log and configuration files for a bug report
  languages  List installed translations with their display names
  sysinfo    Show CPU, mount and packaging details of this system

Examples:
  # Shortest unique labels for a set of download destinations
  rpd-support paths /home/damon/photos /media/damon/backup1/photos

  # Create ~/rpd-bug-report-YYYYMMDD.tar.gz from the default locations
  rpd-support bugreport

  # Show translations with names rendered for a German desktop
  rpd-support languages --display-locale de_DE`,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}
