package review

// RatingInput is the five-star control used inside a table cell. It is
// controlled: the committed value always comes from the owner, Click only
// reports the chosen star through onChange. Hover is a visual preview and
// never commits anything.
type RatingInput struct {
	rating   int
	hover    int // 0 = no preview
	disabled bool
	onChange func(int)
}

func NewRatingInput(rating int, onChange func(int)) *RatingInput {
	return &RatingInput{rating: rating, onChange: onChange}
}

func (r *RatingInput) SetDisabled(disabled bool) {
	r.disabled = disabled
	if disabled {
		r.hover = 0
	}
}

// Interactive reports whether the stars respond at all. Without an onChange
// the control renders inert, matching a read-only rating display.
func (r *RatingInput) Interactive() bool {
	return r.onChange != nil && !r.disabled
}

// SetRating is the owner echoing a committed value back in.
func (r *RatingInput) SetRating(rating int) {
	if rating >= 0 && rating <= 5 {
		r.rating = rating
	}
}

func (r *RatingInput) Rating() int {
	return r.rating
}

// Hover previews star k. Display-only; Leave reverts to the committed value.
func (r *RatingInput) Hover(k int) {
	if !r.Interactive() || k < 1 || k > 5 {
		return
	}
	r.hover = k
}

func (r *RatingInput) Leave() {
	r.hover = 0
}

// Display is the number of filled stars to render right now.
func (r *RatingInput) Display() int {
	if r.hover > 0 {
		return r.hover
	}
	return r.rating
}

// Click activates star k (1-based). Keyboard activation via Enter or Space is
// identical; both invoke onChange exactly once and must not bubble into the
// row's open-detail handler.
func (r *RatingInput) Click(k int) {
	if !r.Interactive() || k < 1 || k > 5 {
		return
	}
	r.onChange(k)
}
