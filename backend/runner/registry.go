package runner

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds the live attempts between requests, keyed by attempt id.
// A user has a single active attempt per lesson; starting again replaces it.
type Registry struct {
	mu       sync.Mutex
	attempts map[string]*Attempt
}

func NewRegistry() *Registry {
	return &Registry{attempts: make(map[string]*Attempt)}
}

// Put registers an attempt and returns its id, discarding any earlier
// attempt by the same user on the same lesson.
func (r *Registry) Put(attempt *Attempt) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.attempts {
		if existing.UserID == attempt.UserID && existing.LessonID == attempt.LessonID {
			delete(r.attempts, id)
		}
	}

	id := uuid.NewString()
	r.attempts[id] = attempt
	return id
}

// Get looks up an attempt, checking it belongs to the given user.
func (r *Registry) Get(id string, userID uint) (*Attempt, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attempt, ok := r.attempts[id]
	if !ok || attempt.UserID != userID {
		return nil, false
	}
	return attempt, true
}

// Remove drops a finished attempt.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, id)
}
