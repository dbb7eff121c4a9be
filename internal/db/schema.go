package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/logger"
)

// CreateSchema creates all tables needed by the application.
// Safe to call multiple times: every statement uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	logger.Log.Infow("database schema ensured", "statements", len(schema))
	return nil
}

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		category TEXT NOT NULL,
		name TEXT NOT NULL,
		proficiency INTEGER NOT NULL DEFAULT 0,
		icon TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		tech_stack TEXT[] NOT NULL DEFAULT '{}',
		architecture_overview TEXT,
		github_link TEXT,
		live_link TEXT,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		degree TEXT NOT NULL,
		institution TEXT NOT NULL,
		period TEXT NOT NULL,
		gpa DOUBLE PRECISION,
		max_gpa DOUBLE PRECISION,
		status TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		role TEXT NOT NULL,
		company TEXT NOT NULL,
		duration TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS hackathons (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		role TEXT NOT NULL,
		year INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS certifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		issuer TEXT NOT NULL,
		year INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}
