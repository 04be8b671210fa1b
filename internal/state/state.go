package state

import (
	"sync"

	"lyrics-server/internal/types"
)

// Surface holds the visibility flags of one page (or one relay connection).
// It implements prompt.View.
type Surface struct {
	mutex    sync.RWMutex
	notify   sync.Mutex // orders mutations with their onChange calls
	state    types.UIState
	onChange func(types.UIState)
}

// NewSurface returns a surface in the idle state. onChange, if not nil, is
// called with a snapshot after every mutation. Calls are serialised in
// mutation order, so the last snapshot delivered is the current state.
// onChange must not mutate the surface.
func NewSurface(onChange func(types.UIState)) *Surface {
	return &Surface{
		state:    types.UIState{GenerateVisible: true},
		onChange: onChange,
	}
}

// Snapshot returns a copy of the current state
func (s *Surface) Snapshot() types.UIState {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state
}

func (s *Surface) update(fn func(*types.UIState)) {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mutex.Lock()
	fn(&s.state)
	snap := s.state
	s.mutex.Unlock()

	if s.onChange != nil {
		s.onChange(snap)
	}
}

// SetLoading swaps the generate control for the loading indicator, or back.
// Exactly one of the two is visible.
func (s *Surface) SetLoading(loading bool) {
	s.update(func(st *types.UIState) {
		st.GenerateVisible = !loading
		st.LoadingVisible = loading
	})
}

// ShowAlert displays the alert bubble with message
func (s *Surface) ShowAlert(message string) {
	s.update(func(st *types.UIState) {
		st.AlertText = message
		st.AlertVisible = true
	})
}

// HideAlert dismisses the alert bubble
func (s *Surface) HideAlert() {
	s.update(func(st *types.UIState) {
		st.AlertVisible = false
	})
}

// ShowResult renders formatted lyrics into the result container
func (s *Surface) ShowResult(lyricsHTML string) {
	s.update(func(st *types.UIState) {
		st.LyricsHTML = lyricsHTML
		st.ResultVisible = true
	})
}
