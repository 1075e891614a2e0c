package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the submission tables when they are missing. Status is plain
// text on purpose: unrecognized values must survive a round trip unchanged.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS speaker_applications (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			mobile_phone TEXT NOT NULL,
			wechat_id TEXT NOT NULL,
			prior_ted_talk TEXT NOT NULL,
			job TEXT NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			idea_presentation TEXT NOT NULL,
			common_belief TEXT NOT NULL,
			core_idea TEXT NOT NULL,
			personal_insight TEXT NOT NULL,
			potential_impact TEXT NOT NULL,
			rehearsal_availability TEXT NOT NULL,
			website_url TEXT NOT NULL DEFAULT '',
			attachment_ref TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'under_review',
			rating INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS speaker_nominations (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			contact TEXT NOT NULL,
			prior_ted_talk TEXT NOT NULL,
			remarks TEXT NOT NULL,
			website_url TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'under_review',
			rating INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
