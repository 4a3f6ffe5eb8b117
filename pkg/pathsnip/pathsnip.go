// Package pathsnip shortens sets of file-system paths for display.
// Given several download destinations that may end in the same folder
// name, it produces the shortest trailing fragment of each path that
// still tells them apart.
package pathsnip

import (
	"path/filepath"
	"strings"
)

var sep = string(filepath.Separator)

// baseName returns everything after the last separator, without any
// of the cleaning filepath.Base performs. The snippet arithmetic
// depends on base names being literal suffixes of their paths.
func baseName(path string) string {
	return path[strings.LastIndex(path, sep)+1:]
}

// collectDuplicates groups paths by base name, keeping only groups
// with more than one member.
func collectDuplicates(basenames, paths []string) map[string][]string {
	groups := make(map[string][]string)
	for i, basename := range basenames {
		groups[basename] = append(groups[basename], paths[i])
	}
	for basename, group := range groups {
		if len(group) < 2 {
			delete(groups, basename)
		}
	}
	return groups
}

// identifyDepth determines how many extra path segments are needed to
// tell the members of a colliding group apart. At each level the most
// recently examined segment is chopped off every still-colliding path
// and the shortened paths are re-grouped; only sub-groups that still
// collide are followed further down.
func identifyDepth(paths []string, depth int) int {
	basenames := make([]string, len(paths))
	for i, path := range paths {
		basenames[i] = baseName(path)
	}

	for basename, group := range collectDuplicates(basenames, paths) {
		chop := len(basename) + 1
		chopped := make([]string, len(group))
		for i, path := range group {
			if chop < len(path) {
				chopped[i] = path[:len(path)-chop]
			}
		}
		if d := identifyDepth(chopped, depth+1); d > depth {
			depth = d
		}
	}
	return depth
}

// UniqueEndSnippets makes a list of path ends unique given possible
// common path endings. Output is the same length and order as the
// input. When all base names already differ they are returned as-is.
// Colliding entries grow upward by whole segments until unique, and a
// snippet that would start at the very top of the path is replaced by
// the full original path.
//
// A snippet covering all but the first segment keeps a leading
// separator to signal the path continues upward. Character-for-
// character identical inputs are unsupported.
func UniqueEndSnippets(paths ...string) []string {
	basenames := make([]string, len(paths))
	unique := make(map[string]struct{}, len(paths))
	for i, path := range paths {
		basenames[i] = baseName(path)
		unique[basenames[i]] = struct{}{}
	}

	if len(unique) == len(basenames) {
		return basenames
	}

	depths := make(map[string]int)
	for basename, group := range collectDuplicates(basenames, paths) {
		depths[basename] = identifyDepth(group, 0)
	}

	names := make([]string, 0, len(paths))
	for i, path := range paths {
		depth := depths[basenames[i]]
		if depth == 0 {
			names = append(names, basenames[i])
			continue
		}

		dirs := strings.Split(path, sep)
		index := len(dirs) - depth - 1
		name := strings.Join(dirs[max(index, 0):], sep)
		if index == 1 {
			name = sep + name
		}
		names = append(names, name)
	}
	return names
}

// RemoveTopmostDirectory strips the first directory component from a
// path, keeping the leading separator. Paths without a separator are
// returned unchanged.
func RemoveTopmostDirectory(path string) string {
	if !strings.Contains(path, sep) {
		return path
	}
	return path[strings.Index(path[1:], sep)+1:]
}

// NonBreakingHTML inhibits word-wrapping of a path displayed in rich
// text by following every separator with a word-joiner entity.
func NonBreakingHTML(path string) string {
	return strings.ReplaceAll(path, sep, sep+"&#8288;")
}
