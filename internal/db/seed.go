package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/auth"
	"github.com/metaltecscoccia/Rapportini360-finale-sub000/internal/platform/config"
)

// Seed creates the default organization and admin user when the database is
// empty, so a fresh deployment can log in.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	var orgCount int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM organizations").Scan(&orgCount); err != nil {
		return err
	}
	if orgCount > 0 {
		return nil
	}
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		log.Println("seed skipped: SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set")
		return nil
	}

	var orgID string
	if err := pool.QueryRow(ctx, `
    INSERT INTO organizations (name)
    VALUES ($1)
    RETURNING id
  `, cfg.SeedOrgName).Scan(&orgID); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, `
    INSERT INTO users (org_id, email, password_hash, first_name, last_name, role, active)
    VALUES ($1, $2, $3, 'Admin', '', 'admin', true)
  `, orgID, cfg.SeedAdminEmail, hash); err != nil {
		return err
	}

	log.Printf("seeded organization %q with admin %s", cfg.SeedOrgName, cfg.SeedAdminEmail)
	return nil
}
