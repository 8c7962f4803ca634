// Package cmd implements the morph commands.
//
// Every command reads the global [Options] stored in its context with
// [WithOptions], loads the data context on demand, and writes to
// [Options.Stdout]:
//
//   - [Render] renders a template file or inline text, optionally watching
//     the template and data files for changes.
//   - [Format] formats values directly with a pattern.
//   - [Vars] lists the paths a template references, checks them against the
//     data, or describes the data the template needs as JSON Schema or YAML.
//   - [Repl] evaluates expressions interactively; see package repl.
//   - [Init] writes the configuration file from the current flag values.
//   - [Version] prints the program version.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
