package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sitevoice"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	result, err := deps.Results.FindResultByID(deps.Ctx, c.ID)
	if err != nil {
		if sitevoice.ErrorCode(err) == sitevoice.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: result %q not found. Use 'sitevoice list' to see stored results.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitevoice.ErrorMessage(err))
		}
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
