// Package locales discovers the translations installed for the
// program and renders language names in the user's own language.
package locales

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// I18nDomain is the gettext domain translations are installed under.
const I18nDomain = "rapid-photo-downloader"

const defaultLocale = "en_US"

// Language pairs a locale code with its display name.
type Language struct {
	Code string
	Name string
}

// AvailableCodes detects the translations installed below localeDir,
// which is laid out gettext-style: <dir>/<code>/LC_MESSAGES/<domain>.mo.
// English is always included. An empty localeDir yields nothing.
func AvailableCodes(localeDir string) []string {
	if localeDir == "" {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(localeDir, "*", "LC_MESSAGES", I18nDomain+".mo"))
	if err != nil || len(files) == 0 {
		return nil
	}
	langs := make([]string, 0, len(files)+1)
	for _, file := range files {
		langs = append(langs, filepath.Base(filepath.Dir(filepath.Dir(file))))
	}
	return append(langs, "en")
}

// parseTag converts a POSIX-style locale code like pt_BR or de_DE.UTF-8
// to a BCP 47 language tag.
func parseTag(code string) (language.Tag, error) {
	code, _, _ = strings.Cut(code, ".")
	return language.Parse(strings.ReplaceAll(code, "_", "-"))
}

// DisplayName returns the human friendly name for a language in the
// display locale, falling back to the generated substitute table when
// the code is unknown. makeMissingLower lower-cases substitute names
// for display locales whose convention is lower case language names.
func DisplayName(langCode string, makeMissingLower bool, displayLocale string) (string, error) {
	substitute := func() (string, error) {
		name, ok := substituteLanguages[langCode]
		if !ok {
			return "", fmt.Errorf("unknown language code %q", langCode)
		}
		if makeMissingLower {
			name = strings.ToLower(name)
		}
		return name, nil
	}

	tag, err := parseTag(langCode)
	if err != nil {
		return substitute()
	}
	displayTag, err := parseTag(displayLocale)
	if err != nil {
		displayTag = language.AmericanEnglish
	}

	name := display.Tags(displayTag).Name(tag)
	if name == "" {
		return substitute()
	}
	return name, nil
}

// SystemLocale returns the current system locale as a POSIX-style
// code, or en_US when it cannot be determined.
func SystemLocale() string {
	loc, err := golocale.GetLocale()
	if err != nil || loc == "" {
		return defaultLocale
	}
	return strings.ReplaceAll(loc, "-", "_")
}

// Available lists the translations installed below localeDir along
// with their display names, sorted by display name. An empty
// displayLocale means the system locale. When no translations are
// installed a small fixed set is returned so language selection
// remains testable.
func Available(localeDir, displayLocale string) []Language {
	codes := AvailableCodes(localeDir)
	if len(codes) == 0 {
		codes = []string{"en", "de", "es"}
	}
	if displayLocale == "" {
		displayLocale = SystemLocale()
	}

	// Does this locale write language names in lower case?
	sample, err := DisplayName("en", false, displayLocale)
	makeMissingLower := err == nil && sample == strings.ToLower(sample)

	langs := make([]Language, 0, len(codes))
	for _, code := range codes {
		name, err := DisplayName(code, makeMissingLower, displayLocale)
		if err != nil {
			logrus.WithError(err).Errorf("no display name for language %s", code)
			name = code
		}
		langs = append(langs, Language{Code: code, Name: name})
	}

	sortByName(langs, displayLocale)
	return langs
}

func sortByName(langs []Language, displayLocale string) {
	tag, err := parseTag(displayLocale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	c := collate.New(tag)
	sort.Slice(langs, func(i, j int) bool {
		return c.CompareString(langs[i].Name, langs[j].Name) < 0
	})
}

// LocaleDirExists is a convenience for deciding whether translations
// are installed at all.
func LocaleDirExists(localeDir string) bool {
	info, err := os.Stat(localeDir)
	return err == nil && info.IsDir()
}
