package main

import (
	"fmt"

	"github.com/fwojciec/ampfilter"
	"github.com/fwojciec/ampfilter/goquery"
)

// Run executes the formats command.
func (c *FormatsCmd) Run(deps *Dependencies) error {
	content, err := readPage(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	formats, err := goquery.AvailableFormats(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	if len(formats) == 0 {
		fmt.Fprintln(deps.Stdout, "No formats declared. Use 'ampfilter filter --force' to filter anyway.")
		return nil
	}

	for _, f := range formats {
		fmt.Fprintln(deps.Stdout, f)
	}
	return nil
}
