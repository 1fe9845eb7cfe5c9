package widget

import (
	"fmt"
	"io"
	"sync"

	"certidao-widget/internal/domain"

	"github.com/google/uuid"
)

// maxPendingAlerts bounds the queue for pages that never dismiss.
const maxPendingAlerts = 20

// AlertQueue holds alerts until the UI binding dismisses them. It backs
// the HTTP bridge, where a page polls the widget state. Past
// maxPendingAlerts the oldest alert is dropped.
type AlertQueue struct {
	mu     sync.Mutex
	alerts []domain.Alert
}

// NewAlertQueue creates an empty queue
func NewAlertQueue() *AlertQueue {
	return &AlertQueue{}
}

// Alert implements domain.Notifier
func (q *AlertQueue) Alert(message string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.alerts = append(q.alerts, domain.Alert{
		ID:      uuid.NewString(),
		Message: message,
	})
	if over := len(q.alerts) - maxPendingAlerts; over > 0 {
		q.alerts = append(q.alerts[:0], q.alerts[over:]...)
	}
}

// Pending returns the undismissed alerts, oldest first.
func (q *AlertQueue) Pending() []domain.Alert {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.Alert, len(q.alerts))
	copy(out, q.alerts)
	return out
}

// Dismiss removes the alert with id. It reports whether it was pending.
func (q *AlertQueue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, a := range q.alerts {
		if a.ID == id {
			q.alerts = append(q.alerts[:i], q.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// WriterNotifier prints alerts, one per line. Used by the terminal binding.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier writing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Alert implements domain.Notifier
func (n *WriterNotifier) Alert(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintln(n.w, message)
}
