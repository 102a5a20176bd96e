package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"eval360/internal/auth"
	"eval360/internal/platform/config"
)

// Seed ensures an admin login exists so report endpoints are reachable on a
// fresh database. Evaluation data itself comes from the admin CRUD surface.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", cfg.SeedAdminEmail).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (name, grade, user_type, division, position, email, password_hash, role)
    VALUES ('Administrator', 0, 'internal', '', '', $1, $2, 'admin')
  `, cfg.SeedAdminEmail, hash)
	return err
}
