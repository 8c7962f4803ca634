package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/morph/data"
	"github.com/ardnew/morph/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

// baseSearchPath is the environment variable suffix holding the data search
// path list.
const baseSearchPath = "PATH"

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700 //nolint:gochecknoglobals

// configPath returns the path formed by joining the configuration directory
// with the given elements.
//
// If no elements are given, it is equivalent to calling [pkg.ConfigDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// searchPath returns the directories searched for relative file names: dirs
// followed by the entries of the MORPH_PATH environment variable.
func searchPath(dirs ...string) []string {
	return data.SearchPath(os.Getenv(pkg.EnvPrefix()+baseSearchPath), dirs...)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
