package activity

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCapacity is the ring size used when NewFeed gets a non-positive size.
const DefaultCapacity = 64

// Entry is one captured log line.
type Entry struct {
	Time    time.Time
	Level   logrus.Level
	Message string
	Fields  logrus.Fields
}

// hiddenFields are attached to every entry and carry no information for the
// footer.
var hiddenFields = map[string]bool{
	"component": true,
	"session":   true,
}

// Summary renders the entry on one line: "15:04:05 navigated col=3 row=2".
// Fields are sorted by key.
func (e Entry) Summary() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Format("15:04:05"))
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		if hiddenFields[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

// Feed is a logrus hook that remembers the most recent entries.
type Feed struct {
	mu    sync.RWMutex
	ring  []Entry
	next  int
	count int
	level logrus.Level
}

// NewFeed returns a feed holding up to capacity entries at or above level.
func NewFeed(capacity int, level logrus.Level) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{ring: make([]Entry, capacity), level: level}
}

// Levels implements logrus.Hook.
func (f *Feed) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		if l <= f.level {
			levels = append(levels, l)
		}
	}
	return levels
}

// Fire implements logrus.Hook.
func (f *Feed) Fire(e *logrus.Entry) error {
	fields := make(logrus.Fields, len(e.Data))
	for k, v := range e.Data {
		fields[k] = v
	}
	f.Add(Entry{Time: e.Time, Level: e.Level, Message: e.Message, Fields: fields})
	return nil
}

// Add appends an entry, overwriting the oldest one when full.
func (f *Feed) Add(e Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ring[f.next] = e
	f.next = (f.next + 1) % len(f.ring)
	if f.count < len(f.ring) {
		f.count++
	}
}

// Len returns the number of entries held.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.count
}

// Last returns the newest entry.
func (f *Feed) Last() (Entry, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.count == 0 {
		return Entry{}, false
	}
	idx := (f.next - 1 + len(f.ring)) % len(f.ring)
	return f.ring[idx], true
}

// Recent returns up to n entries, oldest first.
func (f *Feed) Recent(n int) []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if n <= 0 || f.count == 0 {
		return nil
	}
	n = min(n, f.count)
	out := make([]Entry, n)
	start := f.next - n
	for i := range n {
		out[i] = f.ring[(start+i+len(f.ring))%len(f.ring)]
	}
	return out
}
