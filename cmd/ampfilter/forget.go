package main

import (
	"fmt"

	"github.com/fwojciec/ampfilter"
)

// Run executes the forget command.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm removal\n")
		return ampfilter.Errorf(ampfilter.EINVALID, "use --force to confirm removal")
	}

	if err := deps.Variants.DeleteVariantsByPath(deps.Ctx, c.Path); err != nil {
		if ampfilter.ErrorCode(err) == ampfilter.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'ampfilter variants' to see recorded pages.\n", ampfilter.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", ampfilter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Forgot %q\n", c.Path)
	return nil
}
