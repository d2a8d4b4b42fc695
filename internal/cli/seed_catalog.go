package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/culibrary/portal/internal/config"
	"github.com/culibrary/portal/internal/database"
	catalogrepo "github.com/culibrary/portal/internal/database/catalog"
	"github.com/culibrary/portal/internal/entities"
)

// SeedCatalogCommand writes the default six-book catalog into the record
// store. Without -force it only seeds when no catalog exists, the same
// check every login performs.
type SeedCatalogCommand struct {
	DatabasePath string
	Force        bool
}

func NewSeedCatalogCommand() *SeedCatalogCommand {
	return &SeedCatalogCommand{}
}

func (cmd *SeedCatalogCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-catalog", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.BoolVar(&cmd.Force, "force", false, "Overwrite an existing catalog")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-catalog [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the book catalog with the default books.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed-catalog\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed-catalog -db ./portal.db -force\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SeedCatalogCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := catalogrepo.NewRepository(db)
	books := entities.DefaultCatalog()

	if cmd.Force {
		if err := repo.Save(books); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		fmt.Printf("Catalog overwritten with %d books\n", len(books))
		return nil
	}

	seeded, err := repo.SeedIfAbsent(books)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if seeded {
		fmt.Printf("Catalog seeded with %d books\n", len(books))
	} else {
		fmt.Println("Catalog already present, nothing to do (use -force to overwrite)")
	}
	return nil
}
