package review

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingInputClick(t *testing.T) {
	t.Run("Happy path - each star reports its own value exactly once", func(t *testing.T) {
		for k := 1; k <= 5; k++ {
			t.Run(fmt.Sprintf("star %d", k), func(t *testing.T) {
				var got []int
				input := NewRatingInput(0, func(v int) { got = append(got, v) })

				input.Click(k)
				assert.Equal(t, []int{k}, got)
			})
		}
	})

	t.Run("Happy path - click reports but does not commit", func(t *testing.T) {
		input := NewRatingInput(2, func(int) {})
		input.Click(5)
		assert.Equal(t, 2, input.Rating(), "committed value comes from the owner")
	})

	t.Run("Unhappy path - nil onChange means an inert control", func(t *testing.T) {
		input := NewRatingInput(3, nil)
		assert.False(t, input.Interactive())
		input.Click(4)
		assert.Equal(t, 3, input.Rating())
	})

	t.Run("Unhappy path - disabled control never fires", func(t *testing.T) {
		var calls int
		input := NewRatingInput(3, func(int) { calls++ })
		input.SetDisabled(true)

		input.Click(4)
		input.Hover(2)
		assert.Zero(t, calls)
		assert.Equal(t, 3, input.Display())
	})

	t.Run("Unhappy path - out-of-range stars ignored", func(t *testing.T) {
		var calls int
		input := NewRatingInput(0, func(int) { calls++ })

		input.Click(0)
		input.Click(6)
		assert.Zero(t, calls)
	})
}

func TestRatingInputHover(t *testing.T) {
	t.Run("Happy path - hover previews, leave reverts", func(t *testing.T) {
		input := NewRatingInput(2, func(int) {})

		input.Hover(5)
		assert.Equal(t, 5, input.Display())

		input.Leave()
		assert.Equal(t, 2, input.Display())
	})

	t.Run("Happy path - owner echo moves the committed value", func(t *testing.T) {
		input := NewRatingInput(1, func(int) {})
		input.SetRating(4)
		assert.Equal(t, 4, input.Display())
	})

	t.Run("Unhappy path - out-of-range echo ignored", func(t *testing.T) {
		input := NewRatingInput(1, func(int) {})
		input.SetRating(9)
		assert.Equal(t, 1, input.Rating())
	})
}
