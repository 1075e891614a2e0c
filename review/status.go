package review

import "github.com/Ahmed-Samir101/tedxbeixinqiao/storage"

// StatusOption is one fixed entry of the status selector, with the indicator
// color it renders with.
type StatusOption struct {
	Value string
	Label string
	Color string
}

var statusOptions = []StatusOption{
	{Value: storage.StatusUnderReview, Label: "Under Review", Color: "#facc15"},
	{Value: storage.StatusShortlisted, Label: "Shortlisted", Color: "#60a5fa"},
	{Value: storage.StatusInvited, Label: "Invited", Color: "#22c55e"},
	{Value: storage.StatusContacted, Label: "Contacted", Color: "#c084fc"},
	{Value: storage.StatusRejected, Label: "Rejected", Color: "#ef4444"},
	{Value: storage.StatusFlagged, Label: "Flagged", Color: "#fb923c"},
}

const unknownStatusColor = "#9ca3af"

// StatusOptions returns the six selectable statuses in display order.
func StatusOptions() []StatusOption {
	return append([]StatusOption(nil), statusOptions...)
}

// StatusLabel renders any stored value. Unrecognized values show as "Unknown"
// but are never coerced; they round-trip through storage unchanged.
func StatusLabel(status string) string {
	for _, opt := range statusOptions {
		if opt.Value == status {
			return opt.Label
		}
	}
	return "Unknown"
}

func StatusColor(status string) string {
	for _, opt := range statusOptions {
		if opt.Value == status {
			return opt.Color
		}
	}
	return unknownStatusColor
}

// StatusSelect is the labeled selector used inside a table cell. Selecting an
// option invokes onChange exactly once; the click never reaches the row's
// open-detail handler.
type StatusSelect struct {
	value    string
	onChange func(string)
}

func NewStatusSelect(value string, onChange func(string)) *StatusSelect {
	return &StatusSelect{value: value, onChange: onChange}
}

func (s *StatusSelect) Value() string {
	return s.value
}

func (s *StatusSelect) Select(value string) {
	s.value = value
	if s.onChange != nil {
		s.onChange(value)
	}
}
