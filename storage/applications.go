package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/lib/pq"
)

type ApplicationStorage interface {
	Create(ctx context.Context, app *SpeakerApplication) error
	Get(ctx context.Context, id string) (*SpeakerApplication, error)
	GetAll(ctx context.Context) ([]*SpeakerApplication, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateRating(ctx context.Context, id string, rating int) error
}

type PostgresApplicationStorage struct {
	DB *sql.DB
}

const applicationColumns = `id, full_name, email, mobile_phone, wechat_id, prior_ted_talk, job,
	remarks, idea_presentation, common_belief, core_idea, personal_insight, potential_impact,
	rehearsal_availability, website_url, attachment_ref, status, rating, created_at`

func (s *PostgresApplicationStorage) Create(ctx context.Context, app *SpeakerApplication) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO speaker_applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		app.ID, app.FullName, app.Email, app.MobilePhone, app.WechatID, app.PriorTedTalk, app.Job,
		app.Remarks, app.IdeaPresentation, app.CommonBelief, app.CoreIdea, app.PersonalInsight,
		app.PotentialImpact, app.RehearsalAvailability, app.WebsiteURL, app.AttachmentRef,
		app.Status, app.Rating, app.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("APPLICATION: failed to insert: %v", err)
		return fmt.Errorf("failed to create speaker application: %w", err)
	}
	return nil
}

func (s *PostgresApplicationStorage) Get(ctx context.Context, id string) (*SpeakerApplication, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM speaker_applications WHERE id = $1`, id)

	app, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		logging.Log.Errorf("APPLICATION: failed to get %s: %v", id, err)
		return nil, fmt.Errorf("failed to get speaker application: %w", err)
	}
	return app, nil
}

func (s *PostgresApplicationStorage) GetAll(ctx context.Context) ([]*SpeakerApplication, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM speaker_applications ORDER BY created_at DESC`)
	if err != nil {
		logging.Log.Errorf("APPLICATION: failed to list: %v", err)
		return nil, fmt.Errorf("failed to list speaker applications: %w", err)
	}
	defer rows.Close()

	var apps []*SpeakerApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			logging.Log.Errorf("APPLICATION: failed to scan row: %v", err)
			return nil, fmt.Errorf("failed to scan speaker application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate speaker applications: %w", err)
	}
	return apps, nil
}

func (s *PostgresApplicationStorage) UpdateStatus(ctx context.Context, id, status string) error {
	return updateSubmissionField(ctx, s.DB, "speaker_applications", "status", id, status)
}

func (s *PostgresApplicationStorage) UpdateRating(ctx context.Context, id string, rating int) error {
	return updateSubmissionField(ctx, s.DB, "speaker_applications", "rating", id, rating)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*SpeakerApplication, error) {
	var app SpeakerApplication
	err := row.Scan(&app.ID, &app.FullName, &app.Email, &app.MobilePhone, &app.WechatID,
		&app.PriorTedTalk, &app.Job, &app.Remarks, &app.IdeaPresentation, &app.CommonBelief,
		&app.CoreIdea, &app.PersonalInsight, &app.PotentialImpact, &app.RehearsalAvailability,
		&app.WebsiteURL, &app.AttachmentRef, &app.Status, &app.Rating, &app.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// updateSubmissionField performs the narrow status/rating updates shared by both
// submission tables. created_at and the form fields are never touched after insert.
func updateSubmissionField(ctx context.Context, db *sql.DB, table, column, id string, value any) error {
	res, err := db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE id = $2`, table, column), value, id)
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to update %s.%s for %s: %v", table, column, id, err)
		return fmt.Errorf("failed to update %s: %w", column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
