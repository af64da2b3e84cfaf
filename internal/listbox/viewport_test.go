package listbox

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type recordingScroller struct {
	ids   []string
	known map[string]bool
}

func (s *recordingScroller) ScrollIntoView(id string) bool {
	s.ids = append(s.ids, id)
	return s.known[id]
}

// TestViewportSync_Flush tests deferred scroll requests.
func TestViewportSync_Flush(t *testing.T) {
	r := NewRegistry(cityDecls())
	s := &recordingScroller{known: map[string]bool{"default": true, "ny": true, "nj": true}}
	v := NewViewportSync(zerolog.Nop())
	v.SetScroller(s)

	assert.False(t, v.Flush(r), "nothing pending")

	v.FocusChanged(Ref("ny"))
	v.FocusChanged(Ref("nj"))
	assert.True(t, v.Pending())
	assert.True(t, v.Flush(r))
	assert.Equal(t, []string{"nj"}, s.ids, "only the latest focus is revealed")
	assert.False(t, v.Pending())
}

// TestViewportSync_NoOps tests that unset, stale and unbound values do nothing.
func TestViewportSync_NoOps(t *testing.T) {
	r := NewRegistry(cityDecls())
	s := &recordingScroller{known: map[string]bool{}}
	v := NewViewportSync(zerolog.Nop())

	v.FocusChanged(Ref("ny"))
	assert.False(t, v.Flush(r), "no scroller bound")

	v.SetScroller(s)
	v.FocusChanged(nil)
	assert.False(t, v.Flush(r))
	v.FocusChanged(Ref("gone"))
	assert.False(t, v.Flush(r))
	assert.Empty(t, s.ids)

	v.FocusChanged(Ref("ny"))
	assert.False(t, v.Flush(r), "scroller has no row for the value")
	assert.Equal(t, []string{"ny"}, s.ids)
}
