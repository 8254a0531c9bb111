package session

import (
	"log/slog"

	"github.com/veranemoloko/resumatch/internal/domain"
)

const defaultInboxSize = 32

// Inbox collects notifications until the client drains them. When full, the
// oldest entry is dropped. Like the rest of a session it lives on the loop.
type Inbox struct {
	notes  []domain.Notification
	limit  int
	logger *slog.Logger
}

func newInbox(limit int, logger *slog.Logger) *Inbox {
	if limit <= 0 {
		limit = defaultInboxSize
	}
	return &Inbox{limit: limit, logger: logger}
}

// Notify records n and logs it.
func (i *Inbox) Notify(n domain.Notification) {
	i.logger.Info("notification", "title", n.Title, "severity", n.Severity)

	if len(i.notes) == i.limit {
		i.notes = i.notes[1:]
	}
	i.notes = append(i.notes, n)
}

// Drain returns all pending notifications and empties the inbox.
func (i *Inbox) Drain() []domain.Notification {
	out := i.notes
	i.notes = nil
	if out == nil {
		out = []domain.Notification{}
	}
	return out
}
