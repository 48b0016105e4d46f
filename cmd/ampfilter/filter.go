package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/ampfilter"
)

// Run executes the filter command.
func (c *FilterCmd) Run(deps *Dependencies) error {
	format, err := ampfilter.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	content, err := readPage(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	out, err := deps.Filter.Filter(content, format, c.Force)
	if err != nil {
		if ampfilter.ErrorCode(err) == ampfilter.EUNAVAILABLE {
			fmt.Fprintf(deps.Stderr, "error: %s. Use --force to filter anyway.\n", ampfilter.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		fmt.Fprint(deps.Stdout, out)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.Output), 0755); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if err := os.WriteFile(c.Output, []byte(out), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s variant to %s\n", format, c.Output)
	return nil
}

// readPage reads a rendered page from disk.
func readPage(name string) (string, error) {
	data, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		return "", ampfilter.Errorf(ampfilter.ENOTFOUND, "page %q not found", name)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}
