// Package review implements the submission triage model behind the reviewer
// dashboard: the merged entry list, the interactive table and the small
// status/rating inputs used inside its cells. It performs no I/O of its own;
// persistence is wired in by whoever owns the table.
package review

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

type EntryType string

const (
	TypeApplication EntryType = "application"
	TypeNomination  EntryType = "nomination"
)

// Entry is the display record unifying both submission kinds. The Type tag is
// authoritative for type-specific rendering; never infer the kind from which
// fields happen to be set.
type Entry struct {
	ID             string    `json:"id"`
	Type           EntryType `json:"type"`
	FullName       string    `json:"fullName"`
	Job            string    `json:"job,omitempty"`
	Topic          string    `json:"topic"`
	SubmissionDate time.Time `json:"submissionDate"`
	Status         string    `json:"status"`
	Rating         int       `json:"rating"`
}

// Subtitle is the secondary line under the name column.
func (e Entry) Subtitle() string {
	if e.Type == TypeApplication {
		return e.Job
	}
	return "Nominee"
}

// Initials derives the avatar fallback from the first rune of each name part.
func (e Entry) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(e.FullName) {
		b.WriteString(string([]rune(part)[:1]))
	}
	return b.String()
}

func (e Entry) TypeLabel() string {
	if e.Type == TypeApplication {
		return "Application"
	}
	return "Nomination"
}

func EntryFromApplication(app *storage.SpeakerApplication) Entry {
	return Entry{
		ID:             app.ID,
		Type:           TypeApplication,
		FullName:       app.FullName,
		Job:            app.Job,
		Topic:          app.IdeaPresentation,
		SubmissionDate: app.CreatedAt,
		Status:         app.Status,
		Rating:         app.Rating,
	}
}

// EntryFromNomination maps a nomination. Nominations carry no idea field, so
// the topic shown is the nominator's remarks about the nominee.
func EntryFromNomination(nom *storage.SpeakerNomination) Entry {
	return Entry{
		ID:             nom.ID,
		Type:           TypeNomination,
		FullName:       nom.FullName,
		Topic:          nom.Remarks,
		SubmissionDate: nom.CreatedAt,
		Status:         nom.Status,
		Rating:         nom.Rating,
	}
}

// MergeEntries combines both collections newest-first. A duplicate id across
// the two collections is a precondition violation upstream and is reported
// rather than silently corrupting reorder identity.
func MergeEntries(apps []*storage.SpeakerApplication, noms []*storage.SpeakerNomination) ([]Entry, error) {
	entries := make([]Entry, 0, len(apps)+len(noms))
	seen := make(map[string]bool, len(apps)+len(noms))

	for _, app := range apps {
		if seen[app.ID] {
			return nil, fmt.Errorf("duplicate submission id %q in merged entry list", app.ID)
		}
		seen[app.ID] = true
		entries = append(entries, EntryFromApplication(app))
	}
	for _, nom := range noms {
		if seen[nom.ID] {
			return nil, fmt.Errorf("duplicate submission id %q in merged entry list", nom.ID)
		}
		seen[nom.ID] = true
		entries = append(entries, EntryFromNomination(nom))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SubmissionDate.After(entries[j].SubmissionDate)
	})
	return entries, nil
}
