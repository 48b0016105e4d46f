package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/ampfilter"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Filter   ampfilter.PageFilter
	Variants ampfilter.VariantService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"AMPFILTER_DB" default:"${db_path}" help:"Manifest database path"`
	Verbose bool   `short:"v" help:"Log filter and manifest operations to stderr"`

	Filter   FilterCmd   `cmd:"" help:"Filter one rendered page to a format"`
	Formats  FormatsCmd  `cmd:"" help:"List the formats a page declares"`
	Build    BuildCmd    `cmd:"" help:"Generate format variants for a directory of pages"`
	Variants VariantsCmd `cmd:"" help:"List recorded variants from the build manifest"`
	Forget   ForgetCmd   `cmd:"" help:"Remove a page from the build manifest"`
}

// FilterCmd is the "filter" subcommand.
type FilterCmd struct {
	File   string `arg:"" help:"Rendered HTML page"`
	Format string `short:"f" required:"" help:"Target format (websites, stories, ads, email)"`
	Force  bool   `help:"Filter even if the page does not declare the format"`
	Output string `short:"o" help:"Write the result to a file instead of stdout"`
}

// FormatsCmd is the "formats" subcommand.
type FormatsCmd struct {
	File string `arg:"" help:"Rendered HTML page"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Source      string   `arg:"" help:"Directory of rendered pages"`
	Out         string   `required:"" help:"Parent directory of the output"`
	Name        string   `default:"public" help:"Output directory name"`
	Format      []string `short:"f" name:"format" help:"Format to generate (repeatable, default all)"`
	Force       bool     `help:"Generate formats pages do not declare"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent page limit"`
}

// VariantsCmd is the "variants" subcommand.
type VariantsCmd struct {
	Path   string `help:"Only variants of this page"`
	Format string `short:"f" help:"Only variants of this format"`
	Status string `help:"Only variants with this status (generated, unavailable)"`
	Limit  int    `short:"n" help:"Maximum number of variants to list"`
}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	Path  string `arg:"" help:"Page path as recorded in the manifest"`
	Force bool   `help:"Confirm removal"`
}
