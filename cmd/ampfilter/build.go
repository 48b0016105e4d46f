package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/ampfilter"
	"github.com/fwojciec/ampfilter/build"
	"github.com/fwojciec/ampfilter/fs"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	var formats []ampfilter.Format
	for _, name := range c.Format {
		f, err := ampfilter.ParseFormat(name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
			return err
		}
		formats = append(formats, f)
	}

	builder := &build.Builder{
		Source:      fs.NewSource(c.Source),
		Filter:      deps.Filter,
		Store:       fs.NewFileStore(c.Out, c.Name),
		Variants:    deps.Variants,
		Formats:     formats,
		Force:       c.Force,
		Concurrency: c.Concurrency,
	}

	progress := func(event build.ProgressEvent) {
		switch event.Type {
		case build.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case build.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", build.TruncatePath(event.Path, 60), event.Error)
		}
	}

	result, err := builder.Build(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	output := filepath.Join(c.Out, c.Name)
	if result.Generated == 0 {
		fmt.Fprintf(deps.Stdout, "  No variants generated, %s left unchanged\n", output)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "  Generated %d variants, %d unavailable (%s) in %s\n",
		result.Generated, result.Unavailable, build.FormatBytes(result.Bytes), output)
	return nil
}
