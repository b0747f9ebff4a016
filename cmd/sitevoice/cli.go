package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/sitevoice"
	"github.com/fwojciec/sitevoice/crawl"
	"github.com/fwojciec/sitevoice/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Results sitevoice.ResultService
	Writer  sitevoice.ResultWriter
	Scraper *crawl.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape one or more websites"`
	List   ListCmd   `cmd:"" help:"List stored scrape results"`
	Show   ShowCmd   `cmd:"" help:"Show a stored scrape result as JSON"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored scrape result"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs []string `arg:"" help:"Website URLs to scrape"`

	Timeout        time.Duration `default:"30s" help:"Per-request timeout"`
	Retries        int           `default:"3" help:"Fetch attempts per page"`
	Settle         time.Duration `default:"5s" help:"Delay for client-side widgets to render"`
	VisibilityWait time.Duration `default:"5s" help:"Per-element visibility timeout"`
	Concurrency    int           `short:"c" default:"4" help:"Concurrent page scrapes"`
	NoDynamic      bool          `help:"Skip browser rendering of dynamic content"`
	Out            string        `short:"o" help:"Also write each result as a JSON file to this directory"`
	Verbose        bool          `short:"v" help:"Log fetch and render activity"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL    string `help:"Filter by scraped URL"`
	Limit  int    `default:"20" help:"Maximum results to show"`
	Offset int    `help:"Results to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Result ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Result ID"`
	Force bool   `help:"Confirm deletion"`
}
