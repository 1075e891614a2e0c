package tui

import (
	"context"
	"errors"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/review"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

// Store is the dashboard's view of the persistence gateway. Updates try the
// applications table first and fall through to nominations, mirroring how ids
// are unique across both.
type Store struct {
	Applications storage.ApplicationStorage
	Nominations  storage.NominationStorage
}

func (s *Store) LoadEntries(ctx context.Context) ([]review.Entry, error) {
	apps, err := s.Applications.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	noms, err := s.Nominations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return review.MergeEntries(apps, noms)
}

func (s *Store) SaveStatus(ctx context.Context, id, status string) error {
	err := s.Applications.UpdateStatus(ctx, id, status)
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		return s.Nominations.UpdateStatus(ctx, id, status)
	}
	return err
}

func (s *Store) SaveRating(ctx context.Context, id string, rating int) error {
	err := s.Applications.UpdateRating(ctx, id, rating)
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		return s.Nominations.UpdateRating(ctx, id, rating)
	}
	return err
}
