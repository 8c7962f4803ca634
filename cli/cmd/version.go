package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/morph/pkg"
)

// Version prints the program version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	_, err := fmt.Fprintln(optionsFrom(ctx).Stdout, pkg.Name, pkg.Version)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
