package care

import (
	"strconv"
	"time"

	"github.com/fluorish/fluorish/pkg/kvstore"
)

// Storage keys for the streak record.
const (
	streakKey   = "careStreak"
	lastDateKey = "lastCompletionDate"
)

const dayFormat = "2006-01-02"

// StreakTracker maintains the consecutive-day completion counter. State is a
// (count, lastCompletionDate) pair persisted through the KV store; all
// comparisons are at local calendar-day granularity.
type StreakTracker struct {
	kv  kvstore.KV
	now func() time.Time
}

// NewStreakTracker wires a tracker to its storage. now defaults to time.Now.
func NewStreakTracker(kv kvstore.KV, now func() time.Time) *StreakTracker {
	if now == nil {
		now = time.Now
	}
	return &StreakTracker{kv: kv, now: now}
}

func (t *StreakTracker) read() (count int, lastDate string) {
	if raw, ok := t.kv.Get(streakKey); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n
		}
	}
	lastDate, _ = t.kv.Get(lastDateKey)
	return count, lastDate
}

func (t *StreakTracker) write(count int, lastDate string) {
	t.kv.Set(streakKey, strconv.Itoa(count))
	t.kv.Set(lastDateKey, lastDate)
}

// Count returns the stored streak without validating staleness.
func (t *StreakTracker) Count() int {
	count, _ := t.read()
	return count
}

// Recompute validates the stored streak against the current day. A last
// completion of today or yesterday keeps the count; anything older (or no
// record at all) resets the record to zero. Idempotent; it only writes on
// the stale path.
func (t *StreakTracker) Recompute() int {
	count, lastDate := t.read()
	if lastDate == "" {
		return 0
	}

	today := t.now().Format(dayFormat)
	yesterday := t.now().AddDate(0, 0, -1).Format(dayFormat)
	if lastDate == today || lastDate == yesterday {
		return count
	}

	t.write(0, "")
	return 0
}

// MarkCompletedToday records that all of today's tasks were completed.
// Same-day repeats are no-ops, a completion yesterday extends the streak,
// and any gap restarts it at 1. Returns the resulting count.
func (t *StreakTracker) MarkCompletedToday() int {
	count, lastDate := t.read()
	today := t.now().Format(dayFormat)
	if lastDate == today {
		return count
	}

	yesterday := t.now().AddDate(0, 0, -1).Format(dayFormat)
	if lastDate == yesterday {
		count++
		t.write(count, today)
		return count
	}

	t.write(1, today)
	return 1
}
