package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/database"
)

// SeedCommand inserts the sample books and quotations into an empty store.
type SeedCommand struct {
	Config       *config.Config
	DatabasePath string
	Verbose      bool
}

// NewSeedCommand creates a new SeedCommand
func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{Config: cfg}
}

// ParseFlags parses command line flags
func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.Config.Database.Path, "Path to the sqlite database file (ignored for postgres)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert sample books and quotations. Nothing is written unless both tables are empty.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the seed command
func (cmd *SeedCommand) Run() error {
	dbCfg := cmd.Config.Database
	dbCfg.Path = cmd.DatabasePath
	if !cmd.Verbose {
		dbCfg.LogLevel = "silent"
	}

	db, err := database.NewDatabase(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	seeded, err := db.Seed()
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if seeded {
		fmt.Println("Seeded sample books and quotations")
	} else {
		fmt.Println("Database already contains data, nothing seeded")
	}
	return nil
}
