package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stratakis/rapid-photo-downloader/pkg/pathsnip"
)

func buildPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths <path>...",
		Short: "Show the shortest unique display snippet for each path",
		Long: `Computes the label the interface would use for each path: the
shortest trailing fragment that tells it apart from every other path
given. Paths whose final folder name is unique keep just that name;
colliding paths grow upward one folder at a time.

Examples:
  rpd-support paths /home/damon/photos /home/damon/videos
  rpd-support paths /home/damon/photos /media/damon/backup1/photos`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPaths,
	}
}

func runPaths(_ *cobra.Command, args []string) error {
	snippets := pathsnip.UniqueEndSnippets(args...)
	for i, snippet := range snippets {
		if verbose {
			fmt.Printf("%s\t%s\n", snippet, args[i])
		} else {
			fmt.Println(snippet)
		}
	}
	return nil
}
