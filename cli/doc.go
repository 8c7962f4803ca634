// Package cli contains the command line interface for morph.
//
// # Usage
//
// The default command renders a template read from a file or standard input
// against data merged from YAML, JSON, and TOML files:
//
//	morph -d order.yaml -d defaults.toml invoice.tmpl
//	echo 'Total: {{ format($total, "0.00") }}' | morph -d order.json
//
// Values can be assigned after the data files are merged, either as literal
// text or as an expression evaluated over the merged data:
//
//	morph -d order.yaml -D currency=EUR -D 'total:=sum(map(lines, .qty * .price))' invoice.tmpl
//
// Relative data and template names are looked up in the working directory,
// then in each --path directory, then in the MORPH_PATH list.
//
// # Commands
//
//   - render: render a template, optionally watching its inputs
//   - format: apply a format pattern to values
//   - vars: list, check, or describe the data paths a template references
//   - repl: evaluate expressions interactively
//   - init: write the current flags to the configuration file
//   - version: print the version
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory. Nested keys are joined with '-' to form flag names, so the two
// documents below are equivalent:
//
//	log:
//	  level: debug
//
//	log-level: debug
//
// A config.yaml.json file next to it is read as well.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o morph .
//
// It adds --pprof-mode and --pprof-dir, which defaults to a directory in the
// user cache directory.
package cli
