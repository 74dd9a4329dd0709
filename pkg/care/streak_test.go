package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fluorish/fluorish/pkg/kvstore"
)

// clock is a controllable time source for streak tests.
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }

func newStreakFixture() (*StreakTracker, *clock, kvstore.KV) {
	kv := kvstore.NewMemory()
	c := &clock{t: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	return NewStreakTracker(kv, c.now), c, kv
}

func TestStreakStartsAtZero(t *testing.T) {
	tr, _, _ := newStreakFixture()
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, 0, tr.Recompute())
}

func TestStreakFirstCompletion(t *testing.T) {
	tr, _, _ := newStreakFixture()
	assert.Equal(t, 1, tr.MarkCompletedToday())
	assert.Equal(t, 1, tr.Count())
}

func TestStreakSameDayIsNoOp(t *testing.T) {
	tr, _, _ := newStreakFixture()
	tr.MarkCompletedToday()
	assert.Equal(t, 1, tr.MarkCompletedToday())
	assert.Equal(t, 1, tr.Count())
}

func TestStreakConsecutiveDaysExtend(t *testing.T) {
	tr, c, _ := newStreakFixture()
	tr.MarkCompletedToday()

	c.advanceDays(1)
	assert.Equal(t, 2, tr.MarkCompletedToday())

	c.advanceDays(1)
	assert.Equal(t, 3, tr.MarkCompletedToday())
}

func TestStreakGapResetsToOne(t *testing.T) {
	tr, c, _ := newStreakFixture()
	tr.MarkCompletedToday()
	c.advanceDays(1)
	tr.MarkCompletedToday()

	// Miss two days.
	c.advanceDays(3)
	assert.Equal(t, 1, tr.MarkCompletedToday())
}

func TestRecomputeKeepsFreshStreak(t *testing.T) {
	tr, c, _ := newStreakFixture()
	tr.MarkCompletedToday()
	c.advanceDays(1)
	tr.MarkCompletedToday()

	// Same day: still valid.
	assert.Equal(t, 2, tr.Recompute())

	// Next day, nothing done yet: yesterday's completion still counts.
	c.advanceDays(1)
	assert.Equal(t, 2, tr.Recompute())
}

func TestRecomputeResetsStaleStreak(t *testing.T) {
	tr, c, _ := newStreakFixture()
	tr.MarkCompletedToday()
	c.advanceDays(1)
	tr.MarkCompletedToday()

	c.advanceDays(2)
	assert.Equal(t, 0, tr.Recompute())
	assert.Equal(t, 0, tr.Count(), "reset is persisted")
}

func TestStreakIgnoresMalformedCount(t *testing.T) {
	tr, c, kv := newStreakFixture()
	kv.Set("careStreak", "banana")
	kv.Set("lastCompletionDate", c.t.Format("2006-01-02"))

	assert.Equal(t, 0, tr.Count())
	// A same-day record with a garbage count stays at the parsed zero.
	assert.Equal(t, 0, tr.MarkCompletedToday())
}
