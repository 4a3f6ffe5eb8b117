package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stratakis/rapid-photo-downloader/pkg/fsutil"
	"github.com/stratakis/rapid-photo-downloader/pkg/sysinfo"
)

func buildSysInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo [path]",
		Short: "Show CPU, mount and packaging details of this system",
		Long: `Shows the system details the program bases its behavior on: how
many CPUs downloads may use, whether it runs from a snap package, and
for an optional path, the mount point downloads to that path would
land on.

Examples:
  rpd-support sysinfo
  rpd-support sysinfo /media/damon/backup1/photos
  rpd-support sysinfo -v      # also logs /etc/os-release`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSysInfo,
	}
}

func runSysInfo(_ *cobra.Command, args []string) error {
	if verbose {
		sysinfo.LogOSRelease()
	}

	fmt.Printf("Available CPUs:  %d\n", sysinfo.AvailableCPUCount(false))
	fmt.Printf("Physical CPUs:   %d\n", sysinfo.AvailableCPUCount(true))
	fmt.Printf("Snap package:    %t\n", sysinfo.IsSnap())

	if len(args) == 0 {
		return nil
	}

	path := args[0]
	mount, err := fsutil.MountPoint(path)
	if err != nil {
		return fmt.Errorf("cannot determine mount point of %s: %w", path, err)
	}
	fmt.Printf("Mount point:     %s\n", mount)

	parent, err := fsutil.ExistingParent(path)
	if err != nil {
		return err
	}
	fmt.Printf("Existing parent: %s\n", parent)

	return nil
}
