package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"travelmitr/internal/config"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
	"travelmitr/internal/repositories"
)

type Seeder struct {
	DB      *sql.DB
	Catalog Catalog
}

// New loads the embedded catalog for db.
func New(db *sql.DB) (Seeder, error) {
	c, err := Load()
	if err != nil {
		return Seeder{}, err
	}
	return Seeder{DB: db, Catalog: c}, nil
}

// SeedIfEmpty seeds only when the Destination table has no rows and reports
// whether it did.
func (s Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	n, err := repositories.DestinationRepository{DB: s.DB}.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		slog.Info("seed skipped, catalog already present", "destinations", n)
		return false, nil
	}
	if err := s.Seed(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Seed inserts the whole catalog in one transaction.
func (s Seeder) Seed(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	dests := repositories.DestinationRepository{DB: tx}
	transports := repositories.TransportRepository{DB: tx}
	fares := repositories.FareRepository{DB: tx}

	ids := make(map[string]domain.ID, len(s.Catalog.Destinations))
	for _, d := range s.Catalog.Destinations {
		id, err := dests.Create(ctx, d)
		if err != nil {
			return err
		}
		ids[d.Name] = id
	}

	var nOptions, nFares int
	for _, o := range s.Catalog.Options {
		src, okSrc := ids[o.Source]
		dst, okDst := ids[o.Dest]
		if !okSrc || !okDst {
			return fmt.Errorf("seed option %s -> %s: unknown destination", o.Source, o.Dest)
		}
		transID, err := transports.Create(ctx, models.TransportOption{
			SourceID: src, DestID: dst, Mode: o.Mode,
			BaseCost: o.BaseCost, Duration: o.Duration, ComfortLevel: o.ComfortLevel,
		})
		if err != nil {
			return err
		}
		nOptions++
		if o.Mode != models.ModeCab {
			continue
		}
		for _, f := range s.Catalog.FaresFor(o.Source, o.Dest) {
			if _, err := fares.Create(ctx, models.FareQuote{
				TransportID: transID, AppName: f.AppName, Fare: f.Fare, EstimatedTime: f.EstimatedTime,
			}); err != nil {
				return err
			}
			nFares++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	slog.Info("catalog seeded", "destinations", len(ids), "transport_options", nOptions, "ride_fares", nFares)
	return nil
}

// Reset truncates every table, trips and users included, then reseeds.
func (s Seeder) Reset(ctx context.Context) error {
	if err := s.truncateAll(ctx); err != nil {
		return err
	}
	return s.Seed(ctx)
}

func (s Seeder) truncateAll(ctx context.Context) error {
	// FOREIGN_KEY_CHECKS is per session, so pin one connection.
	conn, err := s.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	tables := config.Tables()
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := conn.ExecContext(ctx, "TRUNCATE TABLE "+tables[i]); err != nil {
			return fmt.Errorf("truncate %s: %w", tables[i], err)
		}
	}
	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1"); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	slog.Info("tables truncated", "tables", len(tables))
	return nil
}
