package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stratakis/rapid-photo-downloader/pkg/locales"
)

var (
	languagesLocaleDir     string
	languagesDisplayLocale string
)

func buildLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List installed translations with their display names",
		Long: `Lists the translations installed for the program, each with its
language name rendered in the display locale. Without installed
translations a small built-in set is shown.

Examples:
  rpd-support languages
  rpd-support languages --locale-dir /usr/share/locale --display-locale de_DE`,
		Args: cobra.NoArgs,
		RunE: runLanguages,
	}

	cmd.Flags().StringVar(&languagesLocaleDir, "locale-dir", "",
		"Directory translations are installed under (gettext layout)")
	cmd.Flags().StringVar(&languagesDisplayLocale, "display-locale", "",
		"Locale to render language names in (default: the system locale)")

	return cmd
}

func runLanguages(_ *cobra.Command, _ []string) error {
	if languagesLocaleDir != "" && !locales.LocaleDirExists(languagesLocaleDir) {
		return fmt.Errorf("locale directory %s does not exist", languagesLocaleDir)
	}

	for _, lang := range locales.Available(languagesLocaleDir, languagesDisplayLocale) {
		fmt.Printf("%-8s %s\n", lang.Code, lang.Name)
	}
	return nil
}
