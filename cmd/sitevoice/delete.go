package main

import (
	"fmt"

	"github.com/fwojciec/sitevoice"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitevoice.Errorf(sitevoice.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Results.DeleteResult(deps.Ctx, c.ID); err != nil {
		if sitevoice.ErrorCode(err) == sitevoice.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: result %q not found. Use 'sitevoice list' to see stored results.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitevoice.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted result %q\n", c.ID)
	return nil
}
