package tui

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/review"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

func TestMain(m *testing.M) {
	logging.BootstrapLogger()
	os.Exit(m.Run())
}

// recordingApplications satisfies the application storage interface and
// records the narrow updates the dashboard issues.
type recordingApplications struct {
	apps          []*storage.SpeakerApplication
	statusUpdates map[string]string
	ratingUpdates map[string]int
}

func newRecordingApplications(apps ...*storage.SpeakerApplication) *recordingApplications {
	return &recordingApplications{
		apps:          apps,
		statusUpdates: make(map[string]string),
		ratingUpdates: make(map[string]int),
	}
}

func (r *recordingApplications) Create(context.Context, *storage.SpeakerApplication) error {
	return nil
}

func (r *recordingApplications) Get(_ context.Context, id string) (*storage.SpeakerApplication, error) {
	for _, app := range r.apps {
		if app.ID == id {
			return app, nil
		}
	}
	return nil, storage.ErrSubmissionNotFound
}

func (r *recordingApplications) GetAll(context.Context) ([]*storage.SpeakerApplication, error) {
	return r.apps, nil
}

func (r *recordingApplications) UpdateStatus(_ context.Context, id, status string) error {
	if _, err := r.Get(context.Background(), id); err != nil {
		return err
	}
	r.statusUpdates[id] = status
	return nil
}

func (r *recordingApplications) UpdateRating(_ context.Context, id string, rating int) error {
	if _, err := r.Get(context.Background(), id); err != nil {
		return err
	}
	r.ratingUpdates[id] = rating
	return nil
}

type recordingNominations struct {
	noms          []*storage.SpeakerNomination
	statusUpdates map[string]string
	ratingUpdates map[string]int
}

func newRecordingNominations(noms ...*storage.SpeakerNomination) *recordingNominations {
	return &recordingNominations{
		noms:          noms,
		statusUpdates: make(map[string]string),
		ratingUpdates: make(map[string]int),
	}
}

func (r *recordingNominations) Create(context.Context, *storage.SpeakerNomination) error {
	return nil
}

func (r *recordingNominations) Get(_ context.Context, id string) (*storage.SpeakerNomination, error) {
	for _, nom := range r.noms {
		if nom.ID == id {
			return nom, nil
		}
	}
	return nil, storage.ErrSubmissionNotFound
}

func (r *recordingNominations) GetAll(context.Context) ([]*storage.SpeakerNomination, error) {
	return r.noms, nil
}

func (r *recordingNominations) UpdateStatus(_ context.Context, id, status string) error {
	if _, err := r.Get(context.Background(), id); err != nil {
		return err
	}
	r.statusUpdates[id] = status
	return nil
}

func (r *recordingNominations) UpdateRating(_ context.Context, id string, rating int) error {
	if _, err := r.Get(context.Background(), id); err != nil {
		return err
	}
	r.ratingUpdates[id] = rating
	return nil
}

func testEntries() []review.Entry {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []review.Entry{
		{ID: "A", Type: review.TypeApplication, FullName: "Alice", Topic: "ants", SubmissionDate: base.Add(2 * time.Hour), Status: storage.StatusUnderReview, Rating: 2},
		{ID: "B", Type: review.TypeNomination, FullName: "Bob", Topic: "bees", SubmissionDate: base.Add(time.Hour), Status: storage.StatusShortlisted, Rating: 4},
		{ID: "C", Type: review.TypeApplication, FullName: "Carol", Topic: "cats", SubmissionDate: base, Status: storage.StatusInvited, Rating: 0},
	}
}

func loadedModel(t *testing.T, store *Store) Model {
	t.Helper()
	m := New(store)
	updated, _ := m.Update(entriesLoadedMsg{entries: testEntries()})
	loaded, ok := updated.(Model)
	require.True(t, ok)
	return loaded
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func pressKey(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(keyMsg(s))
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func emptyStore() *Store {
	return &Store{Applications: newRecordingApplications(), Nominations: newRecordingNominations()}
}

func TestModelLoading(t *testing.T) {
	t.Run("Happy path - init issues a load and the result fills the table", func(t *testing.T) {
		apps := newRecordingApplications(&storage.SpeakerApplication{
			ID: "APP1", FullName: "Jane", IdeaPresentation: "city design", CreatedAt: time.Now(),
		})
		store := &Store{Applications: apps, Nominations: newRecordingNominations()}

		m := New(store)
		cmd := m.Init()
		require.NotNil(t, cmd)

		msg := cmd()
		loaded, ok := msg.(entriesLoadedMsg)
		require.True(t, ok)
		require.NoError(t, loaded.err)
		require.Len(t, loaded.entries, 1)

		updated, _ := m.Update(loaded)
		m = updated.(Model)
		assert.Contains(t, m.View(), "Jane")
		assert.Contains(t, m.View(), "loaded 1 submissions")
	})

	t.Run("Happy path - loading indicator before the data arrives", func(t *testing.T) {
		m := New(emptyStore())
		assert.Contains(t, m.View(), "loading...")
	})
}

func TestModelNavigation(t *testing.T) {
	t.Run("Happy path - cursor moves within bounds", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, "j")
		m, _ = pressKey(t, m, "j")
		assert.Equal(t, 2, m.cursor)

		m, _ = pressKey(t, m, "j")
		assert.Equal(t, 2, m.cursor, "cursor stops at the last row")

		m, _ = pressKey(t, m, "k")
		m, _ = pressKey(t, m, "k")
		m, _ = pressKey(t, m, "k")
		assert.Equal(t, 0, m.cursor, "cursor stops at the first row")
	})

	t.Run("Happy path - q quits", func(t *testing.T) {
		m := loadedModel(t, emptyStore())
		_, cmd := pressKey(t, m, "q")
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}

func TestModelSelection(t *testing.T) {
	t.Run("Happy path - space toggles the row under the cursor", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, " ")
		assert.Equal(t, []string{"A"}, m.table.SelectedIDs())

		m, _ = pressKey(t, m, " ")
		assert.Empty(t, m.table.SelectedIDs())
	})

	t.Run("Happy path - a toggles all visible rows", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, "a")
		assert.Equal(t, []string{"A", "B", "C"}, m.table.SelectedIDs())

		m, _ = pressKey(t, m, "a")
		assert.Empty(t, m.table.SelectedIDs())
	})
}

func TestModelReorder(t *testing.T) {
	t.Run("Happy path - J moves the row down and the cursor follows", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, "J")
		rows := m.table.Rows()
		assert.Equal(t, "B", rows[0].ID)
		assert.Equal(t, "A", rows[1].ID)
		assert.Equal(t, 1, m.cursor)
	})

	t.Run("Unhappy path - reordering blocked while sorted", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, "s")
		m, _ = pressKey(t, m, "J")
		assert.Contains(t, m.statusLine, "clear the sort")
		assert.Equal(t, "A", m.table.Entries()[0].ID, "manual order untouched")
	})
}

func TestModelFilterAndSort(t *testing.T) {
	t.Run("Happy path - f cycles the type filter", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, "f")
		for _, row := range m.table.Rows() {
			assert.Equal(t, review.TypeApplication, row.Type)
		}

		m, _ = pressKey(t, m, "f")
		for _, row := range m.table.Rows() {
			assert.Equal(t, review.TypeNomination, row.Type)
		}

		m, _ = pressKey(t, m, "f")
		assert.Len(t, m.table.Rows(), 3, "third press clears the filter")
	})

	t.Run("Happy path - s cycles sort columns, S flips direction", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, "s")
		col, desc := m.table.SortState()
		assert.Equal(t, review.ColumnName, col)
		assert.False(t, desc)

		m, _ = pressKey(t, m, "S")
		_, desc = m.table.SortState()
		assert.True(t, desc)
	})

	t.Run("Happy path - empty filtered view shows the no-results row", func(t *testing.T) {
		apps := newRecordingApplications(&storage.SpeakerApplication{
			ID: "APP1", FullName: "Jane", CreatedAt: time.Now(),
		})
		store := &Store{Applications: apps, Nominations: newRecordingNominations()}
		m := New(store)
		updated, _ := m.Update(entriesLoadedMsg{entries: []review.Entry{
			{ID: "APP1", Type: review.TypeApplication, FullName: "Jane", SubmissionDate: time.Now()},
		}})
		m = updated.(Model)

		m, _ = pressKey(t, m, "f") // applications
		m, _ = pressKey(t, m, "f") // nominations, none present
		assert.Contains(t, m.View(), review.NoResults)
	})
}

func TestModelMutations(t *testing.T) {
	t.Run("Happy path - t cycles status and persists it", func(t *testing.T) {
		apps := newRecordingApplications(&storage.SpeakerApplication{ID: "A"})
		store := &Store{Applications: apps, Nominations: newRecordingNominations()}
		m := loadedModel(t, store)

		m, cmd := pressKey(t, m, "t")
		require.NotNil(t, cmd)

		msg := cmd()
		saved, ok := msg.(mutationSavedMsg)
		require.True(t, ok)
		require.NoError(t, saved.err)
		assert.Equal(t, "status", saved.what)

		assert.Equal(t, storage.StatusShortlisted, apps.statusUpdates["A"], "under_review advances to the next option")
		assert.Equal(t, storage.StatusShortlisted, m.table.Entries()[0].Status)
	})

	t.Run("Happy path - rating key persists through the fallback chain", func(t *testing.T) {
		noms := newRecordingNominations(&storage.SpeakerNomination{ID: "B"})
		store := &Store{Applications: newRecordingApplications(), Nominations: noms}
		m := loadedModel(t, store)

		m, _ = pressKey(t, m, "j")
		_, cmd := pressKey(t, m, "4")
		require.NotNil(t, cmd)

		msg := cmd()
		saved, ok := msg.(mutationSavedMsg)
		require.True(t, ok)
		require.NoError(t, saved.err)
		assert.Equal(t, 4, noms.ratingUpdates["B"])
	})

	t.Run("Unhappy path - failed save surfaces in the status line", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		updated, _ := m.Update(mutationSavedMsg{what: "status", id: "A", err: assert.AnError})
		m = updated.(Model)
		assert.Contains(t, m.statusLine, "press r to reload")
	})
}

func TestModelDetail(t *testing.T) {
	t.Run("Happy path - enter opens the overlay, esc closes it", func(t *testing.T) {
		m := loadedModel(t, emptyStore())

		m, _ = pressKey(t, m, "enter")
		require.NotNil(t, m.detail)
		assert.Contains(t, m.View(), "Alice")
		assert.Contains(t, m.View(), "esc close")

		m, _ = pressKey(t, m, "esc")
		assert.Nil(t, m.detail)
		assert.True(t, strings.Contains(m.View(), "Submission Review"))
	})
}

func TestNextStatus(t *testing.T) {
	t.Run("Happy path - cycles through the fixed options and wraps", func(t *testing.T) {
		assert.Equal(t, storage.StatusShortlisted, nextStatus(storage.StatusUnderReview))
		assert.Equal(t, storage.StatusUnderReview, nextStatus(storage.StatusFlagged))
	})

	t.Run("Happy path - unknown stored value restarts the cycle", func(t *testing.T) {
		assert.Equal(t, storage.StatusUnderReview, nextStatus("archived"))
	})
}
