// Package scripts provides database bootstrap utilities.
//
// The seeding system works like migrations: executed seeds are tracked in a
// dedicated table so each seed runs exactly once, making the process
// idempotent and safe on both fresh and existing databases.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/auth"
	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/database"
)

// Seeder populates the database with initial required data.
type Seeder struct {
	db          *database.Pool
	passwordCfg *auth.PasswordConfig
}

// NewSeeder creates a new seeder. The password config is needed to hash the
// bootstrap admin credentials.
func NewSeeder(db *database.Pool, passwordCfg *auth.PasswordConfig) *Seeder {
	if passwordCfg == nil {
		passwordCfg = auth.DefaultPasswordConfig()
	}
	return &Seeder{
		db:          db,
		passwordCfg: passwordCfg,
	}
}

// SeedDatabase runs all seed functions that have not been executed yet.
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) (bool, error)
	}{
		{"default_admin", s.seedDefaultAdmin},
	}

	for _, seed := range seeds {
		if executedSeeds[seed.Name] {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
			continue
		}

		log.Info().Str("seed", seed.Name).Msg("Running seed")
		if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
			return err
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds tracking table if it doesn't exist.
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns the set of seed names already applied.
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

// runSeed runs a seed function within a transaction. A seed may report that
// it has nothing to do yet, in which case it is not recorded and will be
// retried on the next startup.
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) (bool, error)) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		applied, err := seedFunc(ctx, tx)
		if err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}
		if !applied {
			return nil
		}

		query := `INSERT INTO seeds (name) VALUES ($1)`
		if _, err := tx.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}

// seedDefaultAdmin creates a bootstrap admin account from the ADMIN_NAME,
// ADMIN_EMAIL and ADMIN_PASSWORD environment variables. When the variables
// are not set the seed is skipped, since admins can also register through
// the API.
func (s *Seeder) seedDefaultAdmin(ctx context.Context, tx *sql.Tx) (bool, error) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Info().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return false, nil
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	hash, err := auth.HashPassword(password, s.passwordCfg)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	query := `
		INSERT INTO students (name, email, type, password_hash)
		VALUES ($1, LOWER($2), $3, $4)
		ON CONFLICT (email) DO NOTHING
	`
	result, err := tx.ExecContext(ctx, query, name, email, constants.AccountTypeAdmin, hash)
	if err != nil {
		return false, fmt.Errorf("failed to insert admin account: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	log.Info().
		Bool("created", inserted > 0).
		Msg("Admin account seeding completed")

	return true, nil
}
