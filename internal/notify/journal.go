package notify

import (
	"context"
	"sync"

	"github.com/RaikyD/charms-admin/internal/domain"
)

const defaultJournalSize = 200

// Journal keeps the most recent notifications in memory, oldest first.
type Journal struct {
	mu      sync.RWMutex
	limit   int
	entries []domain.Notification
}

func NewJournal(limit int) *Journal {
	if limit <= 0 {
		limit = defaultJournalSize
	}
	return &Journal{limit: limit}
}

func (j *Journal) Notify(_ context.Context, n domain.Notification) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, n)
	if over := len(j.entries) - j.limit; over > 0 {
		j.entries = append([]domain.Notification(nil), j.entries[over:]...)
	}
}

// Recent returns up to n entries, newest first. n <= 0 returns all of them.
func (j *Journal) Recent(n int) []domain.Notification {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if n <= 0 || n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]domain.Notification, 0, n)
	for i := len(j.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

// Last returns the newest entry.
func (j *Journal) Last() (domain.Notification, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if len(j.entries) == 0 {
		return domain.Notification{}, false
	}
	return j.entries[len(j.entries)-1], true
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}
