// internal/app/deduplicator.go
package app

// Deduplicator remembers the last message handed to the notifier so an
// unchanged status is not sent again on every poll.
// It is owned by a single poller and is not safe for concurrent use.
type Deduplicator struct {
	last string
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// ShouldSend reports whether text differs from the last recorded message.
func (d *Deduplicator) ShouldSend(text string) bool {
	return text != d.last
}

// Record stores text as the last message. Call it after the send attempt.
func (d *Deduplicator) Record(text string) {
	d.last = text
}

func (d *Deduplicator) Last() string {
	return d.last
}
