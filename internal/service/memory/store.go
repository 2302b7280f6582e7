package memory

import (
	"strings"
	"sync"

	"github.com/nyayasetu/nyayasetu/internal/core"
)

// NoHistory is what the prompt receives for users with no prior turns.
const NoHistory = "No relevant previous interactions."

// Store keeps a bounded, per-user history of question/answer turns for the
// lifetime of the process. Appends from concurrent requests for different
// users are safe; two concurrent turns for the same user may land out of
// relative order, which is accepted — conversational latency dominates.
type Store struct {
	mu     sync.Mutex
	window int
	turns  map[string][]string
}

// NewStore creates a store truncating each user's history to window entries.
func NewStore(window int) *Store {
	if window <= 0 {
		window = 10
	}
	return &Store{
		window: window,
		turns:  make(map[string][]string),
	}
}

// Append records a completed turn for the user, evicting the oldest entries
// once the window is exceeded. It always appends, never merges. The error
// return exists for alternative history backends; the in-process store never
// fails.
func (s *Store) Append(userID string, turn core.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.turns[userID], turn.Format())
	if len(history) > s.window {
		history = history[len(history)-s.window:]
	}
	s.turns[userID] = history
	return nil
}

// Read returns the user's formatted turns, oldest first. Unknown users get
// an empty slice, not an error.
func (s *Store) Read(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.turns[userID]
	out := make([]string, len(history))
	copy(out, history)
	return out
}

// Render joins the user's history into the prompt memory block, falling back
// to the NoHistory placeholder when there is none.
func (s *Store) Render(userID string) string {
	history := s.Read(userID)
	if len(history) == 0 {
		return NoHistory
	}
	return strings.Join(history, "\n\n")
}
