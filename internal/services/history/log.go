// Package history keeps a session's recent scoring activity: at most
// MaxEntries rows, newest first.
package history

import (
	"encoding/json"
	"fmt"

	"fraudcheck/internal/models"
)

// MaxEntries caps the number of rows kept per session.
const MaxEntries = 5

// SessionKey is the session field holding the encoded log.
const SessionKey = "history"

// Log is a bounded, most-recent-first list of history entries.
type Log struct {
	entries []models.HistoryEntry
}

// New builds a log from entries already ordered newest first, truncating
// anything beyond MaxEntries.
func New(entries ...models.HistoryEntry) *Log {
	l := &Log{}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	l.entries = append(l.entries, entries...)
	return l
}

// Push inserts e at the front and drops the oldest rows past MaxEntries.
func (l *Log) Push(e models.HistoryEntry) {
	next := make([]models.HistoryEntry, 0, MaxEntries)
	next = append(next, e)
	next = append(next, l.entries...)
	if len(next) > MaxEntries {
		next = next[:MaxEntries]
	}
	l.entries = next
}

// Entries returns a copy of the rows, newest first.
func (l *Log) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Entries())
}

func (l *Log) UnmarshalJSON(data []byte) error {
	var entries []models.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to decode history: %w", err)
	}
	*l = *New(entries...)
	return nil
}
