package notify

import (
	"context"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/logger"
)

// Sink is a notification destination that can fail, such as a broker or a database.
type Sink interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Fanout delivers each notification to the in-memory journal and then to every
// sink. Sink failures are logged and never reach the console operation.
type Fanout struct {
	journal *Journal
	sinks   map[string]Sink
}

func NewFanout(journal *Journal) *Fanout {
	return &Fanout{journal: journal, sinks: make(map[string]Sink)}
}

// Add registers a named sink. Not safe to call once notifications flow.
func (f *Fanout) Add(name string, sink Sink) {
	if sink != nil {
		f.sinks[name] = sink
	}
}

func (f *Fanout) Notify(ctx context.Context, n domain.Notification) {
	if f.journal != nil {
		f.journal.Notify(ctx, n)
	}
	for name, sink := range f.sinks {
		if err := sink.Publish(ctx, n); err != nil {
			logger.Warn("notification sink failed", "sink", name, "action", n.Action, "err", err)
		}
	}
}
