package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stratakis/rapid-photo-downloader/pkg/bugreport"
	"github.com/stratakis/rapid-photo-downloader/pkg/format"
)

var (
	bugReportLogDir     string
	bugReportConfigFile string
	bugReportOutput     string
)

func buildBugReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bugreport",
		Short: "Package log and configuration files for a bug report",
		Long: `Creates a tar.gz archive of the program's log directory and
configuration file, named rpd-bug-report-YYYYMMDD.tar.gz in your home
directory. Attach the archive to a bug report.

Examples:
  rpd-support bugreport
  rpd-support bugreport --log-dir /tmp/rpd-logs -o /tmp/report.tar.gz`,
		Args: cobra.NoArgs,
		RunE: runBugReport,
	}

	cmd.Flags().StringVar(&bugReportLogDir, "log-dir", "",
		"Log directory to include (default: the program's log directory)")
	cmd.Flags().StringVar(&bugReportConfigFile, "config-file", "",
		"Configuration file to include (default: the program's configuration file)")
	cmd.Flags().StringVarP(&bugReportOutput, "output", "o", "",
		"Archive to create (default: rpd-bug-report-YYYYMMDD.tar.gz in your home directory)")

	return cmd
}

func runBugReport(_ *cobra.Command, _ []string) error {
	tarName := bugReportOutput
	if tarName == "" {
		var err error
		tarName, err = bugreport.TarPath()
		if err != nil {
			return err
		}
	}

	if err := bugreport.Create(tarName, bugReportLogDir, bugReportConfigFile); err != nil {
		return err
	}

	info, err := os.Stat(tarName)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s (%s)\n", tarName, format.Size(info.Size()))
	return nil
}
