package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluorish/fluorish/pkg/catalog"
)

var planted = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestProgressAtPlanting(t *testing.T) {
	assert.Equal(t, 0, Progress(planted, 8, planted))
}

func TestProgressAtHorizon(t *testing.T) {
	now := planted.AddDate(0, 0, 8*7)
	assert.Equal(t, 100, Progress(planted, 8, now))
}

func TestProgressPastHorizonClamps(t *testing.T) {
	now := planted.AddDate(0, 0, 200)
	assert.Equal(t, 100, Progress(planted, 8, now))
}

func TestProgressBeforePlantingClamps(t *testing.T) {
	now := planted.AddDate(0, 0, -3)
	assert.Equal(t, 0, Progress(planted, 8, now))
}

func TestProgressMidway(t *testing.T) {
	now := planted.AddDate(0, 0, 28)
	assert.Equal(t, 50, Progress(planted, 8, now))
}

func TestProgressMonotonic(t *testing.T) {
	prev := 0
	for d := 0; d <= 70; d++ {
		p := Progress(planted, 8, planted.AddDate(0, 0, d))
		assert.GreaterOrEqual(t, p, prev, "day %d", d)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestProgressWithTasksBlends(t *testing.T) {
	p := catalog.Plant{Watering: catalog.WaterEveryDay}
	r := Generate(p, 2)

	// Half the time elapsed, no tasks done: mean(0.5, 0) = 25%.
	now := planted.AddDate(0, 0, 7)
	assert.Equal(t, 25, ProgressWithTasks(planted, 2, &r, now))

	// Complete everything: mean(0.5, 1) = 75%.
	for wi := range r.Weeks {
		for di := range r.Weeks[wi].Days {
			for ti := range r.Weeks[wi].Days[di].Tasks {
				r.Weeks[wi].Days[di].Tasks[ti].Completed = true
			}
		}
	}
	assert.Equal(t, 75, ProgressWithTasks(planted, 2, &r, now))
}

func TestProgressWithTasksEmptyRoutineFallsBack(t *testing.T) {
	r := Routine{TotalWeeks: 2, Weeks: []Week{emptyWeek(1), emptyWeek(2)}}
	now := planted.AddDate(0, 0, 7)
	assert.Equal(t, 50, ProgressWithTasks(planted, 2, &r, now))
	assert.Equal(t, 50, ProgressWithTasks(planted, 2, nil, now))
}

func TestStageFromProgressBoundaries(t *testing.T) {
	cases := []struct {
		progress int
		want     Stage
	}{
		{0, StagePlanting},
		{9, StagePlanting},
		{10, StageGermination},
		{19, StageGermination},
		{20, StageVegetative},
		{49, StageVegetative},
		{50, StageFlowering},
		{69, StageFlowering},
		{70, StageFruiting},
		{89, StageFruiting},
		{90, StageHarvesting},
		{100, StageHarvesting},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StageFromProgress(c.progress), "progress %d", c.progress)
	}
}

func TestStageFromProgressTotal(t *testing.T) {
	for p := 0; p <= 100; p++ {
		s := StageFromProgress(p)
		assert.NotEmpty(t, s, "progress %d", p)
		assert.NotEqual(t, StageDormant, s, "progress %d", p)
	}
}

func TestCurrentWeek(t *testing.T) {
	assert.Equal(t, 1, CurrentWeek(planted, 8, planted))
	assert.Equal(t, 1, CurrentWeek(planted, 8, planted.AddDate(0, 0, 6)))
	assert.Equal(t, 2, CurrentWeek(planted, 8, planted.AddDate(0, 0, 7)))
	assert.Equal(t, 8, CurrentWeek(planted, 8, planted.AddDate(0, 0, 55)))
	// Clamped at the horizon.
	assert.Equal(t, 8, CurrentWeek(planted, 8, planted.AddDate(0, 0, 300)))
	// And before planting.
	assert.Equal(t, 1, CurrentWeek(planted, 8, planted.AddDate(0, 0, -10)))
}

func TestToday(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	for i, want := range [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		assert.Equal(t, want, Today(monday.AddDate(0, 0, i)))
	}
}
