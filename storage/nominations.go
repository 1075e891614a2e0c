package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/lib/pq"
)

type NominationStorage interface {
	Create(ctx context.Context, nom *SpeakerNomination) error
	Get(ctx context.Context, id string) (*SpeakerNomination, error)
	GetAll(ctx context.Context) ([]*SpeakerNomination, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateRating(ctx context.Context, id string, rating int) error
}

type PostgresNominationStorage struct {
	DB *sql.DB
}

const nominationColumns = `id, full_name, contact, prior_ted_talk, remarks, website_url,
	status, rating, created_at`

func (s *PostgresNominationStorage) Create(ctx context.Context, nom *SpeakerNomination) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO speaker_nominations (`+nominationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		nom.ID, nom.FullName, nom.Contact, nom.PriorTedTalk, nom.Remarks, nom.WebsiteURL,
		nom.Status, nom.Rating, nom.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("NOMINATION: failed to insert: %v", err)
		return fmt.Errorf("failed to create speaker nomination: %w", err)
	}
	return nil
}

func (s *PostgresNominationStorage) Get(ctx context.Context, id string) (*SpeakerNomination, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+nominationColumns+` FROM speaker_nominations WHERE id = $1`, id)

	nom, err := scanNomination(row)
	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		logging.Log.Errorf("NOMINATION: failed to get %s: %v", id, err)
		return nil, fmt.Errorf("failed to get speaker nomination: %w", err)
	}
	return nom, nil
}

func (s *PostgresNominationStorage) GetAll(ctx context.Context) ([]*SpeakerNomination, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+nominationColumns+` FROM speaker_nominations ORDER BY created_at DESC`)
	if err != nil {
		logging.Log.Errorf("NOMINATION: failed to list: %v", err)
		return nil, fmt.Errorf("failed to list speaker nominations: %w", err)
	}
	defer rows.Close()

	var noms []*SpeakerNomination
	for rows.Next() {
		nom, err := scanNomination(rows)
		if err != nil {
			logging.Log.Errorf("NOMINATION: failed to scan row: %v", err)
			return nil, fmt.Errorf("failed to scan speaker nomination: %w", err)
		}
		noms = append(noms, nom)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate speaker nominations: %w", err)
	}
	return noms, nil
}

func (s *PostgresNominationStorage) UpdateStatus(ctx context.Context, id, status string) error {
	return updateSubmissionField(ctx, s.DB, "speaker_nominations", "status", id, status)
}

func (s *PostgresNominationStorage) UpdateRating(ctx context.Context, id string, rating int) error {
	return updateSubmissionField(ctx, s.DB, "speaker_nominations", "rating", id, rating)
}

func scanNomination(row rowScanner) (*SpeakerNomination, error) {
	var nom SpeakerNomination
	err := row.Scan(&nom.ID, &nom.FullName, &nom.Contact, &nom.PriorTedTalk, &nom.Remarks,
		&nom.WebsiteURL, &nom.Status, &nom.Rating, &nom.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &nom, nil
}
