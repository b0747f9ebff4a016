package main

import (
	"fmt"

	"github.com/fwojciec/sitevoice"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := sitevoice.ResultFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	results, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitevoice.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found. Use 'sitevoice scrape' to create one.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (%d testimonials)\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04"), r.URL, len(r.Testimonials))
	}

	return nil
}
