package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ampfilter"
	"github.com/fwojciec/ampfilter/goquery"
	ampslog "github.com/fwojciec/ampfilter/slog"
	"github.com/fwojciec/ampfilter/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default manifest database path. Overridden by --db.
	DBPath string

	// SQLite database used by the manifest.
	DB *sqlite.DB

	// Services for end-to-end testing.
	VariantService ampfilter.VariantService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ampfilter"),
		kong.Description("Filter rendered documentation pages to a single format"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"db_path": m.DBPath},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ampfilter --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	m.DBPath = cli.DB

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	var filter ampfilter.PageFilter = goquery.NewFilter(goquery.WithLogger(logger))
	if cli.Verbose {
		filter = ampslog.NewLoggingFilter(filter, logger)
	}
	deps.Filter = filter

	if needsManifest(kongCtx.Command()) {
		if m.VariantService == nil {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set AMPFILTER_DB or --db to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.VariantService = sqlite.NewVariantService(m.DB)
		}

		deps.Variants = m.VariantService
		if cli.Verbose {
			deps.Variants = ampslog.NewLoggingVariantService(m.VariantService, logger)
		}
	}

	return kongCtx.Run(deps)
}

// needsManifest reports whether a command reads or writes the manifest.
func needsManifest(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "build", "variants", "forget":
		return true
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("AMPFILTER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ampfilter.db"
	}
	dir := filepath.Join(home, ".ampfilter")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ampfilter.db")
}
