package controllers

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/email"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

func TestMain(m *testing.M) {
	logging.BootstrapLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeApplicationStorage is an in-memory stand-in keyed by id. Setting failAll
// makes every call fail with a generic error.
type fakeApplicationStorage struct {
	apps    map[string]*storage.SpeakerApplication
	order   []string
	failAll bool
}

func newFakeApplicationStorage() *fakeApplicationStorage {
	return &fakeApplicationStorage{apps: make(map[string]*storage.SpeakerApplication)}
}

func (f *fakeApplicationStorage) Create(_ context.Context, app *storage.SpeakerApplication) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	if _, ok := f.apps[app.ID]; ok {
		return storage.ErrItemWithIDAlreadyExists
	}
	f.apps[app.ID] = app
	f.order = append(f.order, app.ID)
	return nil
}

func (f *fakeApplicationStorage) Get(_ context.Context, id string) (*storage.SpeakerApplication, error) {
	if f.failAll {
		return nil, errors.New("storage unavailable")
	}
	app, ok := f.apps[id]
	if !ok {
		return nil, storage.ErrSubmissionNotFound
	}
	return app, nil
}

func (f *fakeApplicationStorage) GetAll(_ context.Context) ([]*storage.SpeakerApplication, error) {
	if f.failAll {
		return nil, errors.New("storage unavailable")
	}
	out := make([]*storage.SpeakerApplication, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.apps[id])
	}
	return out, nil
}

func (f *fakeApplicationStorage) UpdateStatus(_ context.Context, id, status string) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	app, ok := f.apps[id]
	if !ok {
		return storage.ErrSubmissionNotFound
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationStorage) UpdateRating(_ context.Context, id string, rating int) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	app, ok := f.apps[id]
	if !ok {
		return storage.ErrSubmissionNotFound
	}
	app.Rating = rating
	return nil
}

type fakeNominationStorage struct {
	noms    map[string]*storage.SpeakerNomination
	order   []string
	failAll bool
}

func newFakeNominationStorage() *fakeNominationStorage {
	return &fakeNominationStorage{noms: make(map[string]*storage.SpeakerNomination)}
}

func (f *fakeNominationStorage) Create(_ context.Context, nom *storage.SpeakerNomination) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	if _, ok := f.noms[nom.ID]; ok {
		return storage.ErrItemWithIDAlreadyExists
	}
	f.noms[nom.ID] = nom
	f.order = append(f.order, nom.ID)
	return nil
}

func (f *fakeNominationStorage) Get(_ context.Context, id string) (*storage.SpeakerNomination, error) {
	if f.failAll {
		return nil, errors.New("storage unavailable")
	}
	nom, ok := f.noms[id]
	if !ok {
		return nil, storage.ErrSubmissionNotFound
	}
	return nom, nil
}

func (f *fakeNominationStorage) GetAll(_ context.Context) ([]*storage.SpeakerNomination, error) {
	if f.failAll {
		return nil, errors.New("storage unavailable")
	}
	out := make([]*storage.SpeakerNomination, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.noms[id])
	}
	return out, nil
}

func (f *fakeNominationStorage) UpdateStatus(_ context.Context, id, status string) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	nom, ok := f.noms[id]
	if !ok {
		return storage.ErrSubmissionNotFound
	}
	nom.Status = status
	return nil
}

func (f *fakeNominationStorage) UpdateRating(_ context.Context, id string, rating int) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	nom, ok := f.noms[id]
	if !ok {
		return storage.ErrSubmissionNotFound
	}
	nom.Rating = rating
	return nil
}

// fakeNotifier records every notification and answers with canned results.
type fakeNotifier struct {
	applicationResult email.Result
	nominationResult  email.Result
	applications      []*storage.SpeakerApplication
	nominations       []*storage.SpeakerNomination
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		applicationResult: email.Result{Success: true},
		nominationResult:  email.Result{Success: true},
	}
}

func (f *fakeNotifier) SendSpeakerApplicationEmail(app *storage.SpeakerApplication) email.Result {
	f.applications = append(f.applications, app)
	return f.applicationResult
}

func (f *fakeNotifier) SendSpeakerNominationEmail(nom *storage.SpeakerNomination) email.Result {
	f.nominations = append(f.nominations, nom)
	return f.nominationResult
}
