package data

import (
	"os"
	"path/filepath"

	"github.com/ardnew/mung"
)

// SearchPath returns the directories of the path list with dirs prepended.
// Only existing directories are kept.
func SearchPath(list string, dirs ...string) []string {
	return filepath.SplitList(
		mung.Make(
			mung.WithSubjectItems(list),
			mung.WithDelim(string(os.PathListSeparator)),
			mung.WithPrefixItems(dirs...),
			mung.WithFilter(isDir),
		).String(),
	)
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// Find returns the first existing candidate for name: name itself, then name
// joined with each search directory. Absolute names and misses return name.
func Find(name string, search []string) string {
	if filepath.IsAbs(name) || exists(name) {
		return name
	}

	for _, dir := range search {
		if p := filepath.Join(dir, name); exists(p) {
			return p
		}
	}

	return name
}

func exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
