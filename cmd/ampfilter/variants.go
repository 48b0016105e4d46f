package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/ampfilter"
)

// Run executes the variants command.
func (c *VariantsCmd) Run(deps *Dependencies) error {
	filter := ampfilter.VariantFilter{Limit: c.Limit}

	if c.Path != "" {
		filter.Path = &c.Path
	}
	if c.Format != "" {
		f, err := ampfilter.ParseFormat(c.Format)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
			return err
		}
		filter.Format = &f
	}
	if c.Status != "" {
		status := ampfilter.VariantStatus(c.Status)
		if status != ampfilter.VariantGenerated && status != ampfilter.VariantUnavailable {
			err := ampfilter.Errorf(ampfilter.EINVALID, "unknown status %q, expected generated or unavailable", c.Status)
			fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
			return err
		}
		filter.Status = &status
	}

	variants, err := deps.Variants.FindVariants(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	if len(variants) == 0 {
		fmt.Fprintln(deps.Stdout, "No variants found. Use 'ampfilter build' to generate some.")
		return nil
	}

	for _, v := range variants {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			v.Path, v.Format, v.Status, v.GeneratedAt.Format(time.RFC3339))
	}
	return nil
}
