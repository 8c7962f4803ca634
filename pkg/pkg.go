//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of morph embedded at build time.
// It is printed by the version command.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It appears in help text and default paths.
	Name = "morph"
	// Description is the one-line summary shown in help output.
	Description = "Render text templates with inline formatting"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
