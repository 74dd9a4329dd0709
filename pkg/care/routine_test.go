package care

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluorish/fluorish/pkg/catalog"
)

func testPlant(watering catalog.Watering, maintenance catalog.Maintenance) catalog.Plant {
	return catalog.Plant{
		ID:          "test-plant",
		Name:        "Test Plant",
		Watering:    watering,
		Maintenance: maintenance,
	}
}

func waterTaskCount(w Week) int {
	count := 0
	for _, d := range w.Days {
		for _, t := range d.Tasks {
			if t.Title == "Water the plant" {
				count++
			}
		}
	}
	return count
}

func TestGenerateDailyWatering(t *testing.T) {
	r := Generate(testPlant(catalog.WaterEveryDay, catalog.MaintenanceLow), 4)

	require.Len(t, r.Weeks, 4)
	for _, w := range r.Weeks {
		assert.Equal(t, 7, waterTaskCount(w), "week %d", w.Number)
	}
}

func TestGenerateFewTimesWatering(t *testing.T) {
	r := Generate(testPlant(catalog.WaterFewTimes, catalog.MaintenanceLow), 4)

	for _, w := range r.Weeks {
		assert.Equal(t, 3, waterTaskCount(w), "week %d", w.Number)
		for _, name := range []Weekday{Monday, Wednesday, Friday} {
			d := w.day(name)
			require.NotEmpty(t, d.Tasks)
			assert.Equal(t, "Water the plant", d.Tasks[0].Title)
		}
	}
}

func TestGenerateOnceAWeekWatering(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 8)

	for _, w := range r.Weeks {
		assert.Equal(t, 1, waterTaskCount(w), "week %d", w.Number)
	}
}

func TestGenerateBiweeklyWatering(t *testing.T) {
	r := Generate(testPlant(catalog.WaterEveryTwoWks, catalog.MaintenanceLow), 6)

	for _, w := range r.Weeks {
		want := 0
		if w.Number%2 == 1 {
			want = 1
		}
		assert.Equal(t, want, waterTaskCount(w), "week %d", w.Number)
	}
}

func TestGenerateMonthlyWatering(t *testing.T) {
	r := Generate(testPlant(catalog.WaterMonthly, catalog.MaintenanceLow), 9)

	watered := []int{}
	for _, w := range r.Weeks {
		if waterTaskCount(w) > 0 {
			watered = append(watered, w.Number)
		}
	}
	assert.Equal(t, []int{1, 5, 9}, watered)
}

func TestGenerateHighMaintenance(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceHigh), 4)

	for _, w := range r.Weeks {
		wed := w.day(Wednesday)
		require.NotEmpty(t, wed.Tasks, "week %d", w.Number)
		assert.Equal(t, "Check for pests and diseases", wed.Tasks[0].Title)

		fri := w.day(Friday)
		require.NotEmpty(t, fri.Tasks, "week %d", w.Number)
		assert.Equal(t, "Fertilize the plant", fri.Tasks[0].Title)
	}
}

func TestGenerateModerateMaintenanceFertilizesEvenWeeks(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceModerate), 4)

	for _, w := range r.Weeks {
		fri := w.day(Friday)
		if w.Number%2 == 0 {
			require.NotEmpty(t, fri.Tasks, "week %d", w.Number)
			assert.Equal(t, "Fertilize the plant", fri.Tasks[0].Title)
		} else {
			assert.Empty(t, fri.Tasks, "week %d", w.Number)
		}
	}
}

func TestGenerateLowMaintenanceSkipsChecks(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 4)

	for _, w := range r.Weeks {
		assert.Empty(t, w.day(Wednesday).Tasks, "week %d", w.Number)
	}
}

func TestGenerateStageBands(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 8)

	// Germination: weeks 1-2, Monday.
	for _, n := range []int{1, 2} {
		mon := r.WeekByNumber(n).day(Monday)
		titles := taskTitles(mon)
		assert.Contains(t, titles, "Monitor germination progress", "week %d", n)
	}
	assert.NotContains(t, taskTitles(r.WeekByNumber(3).day(Monday)), "Monitor germination progress")

	// Pruning: weeks 3-4, Thursday.
	for _, n := range []int{3, 4} {
		assert.Contains(t, taskTitles(r.WeekByNumber(n).day(Thursday)), "Prune if needed", "week %d", n)
	}
	assert.Empty(t, r.WeekByNumber(5).day(Thursday).Tasks)

	// Harvest checks: final three weeks, Saturday.
	for _, n := range []int{6, 7, 8} {
		assert.Contains(t, taskTitles(r.WeekByNumber(n).day(Saturday)), "Check if ready to harvest", "week %d", n)
	}
	assert.Empty(t, r.WeekByNumber(5).day(Saturday).Tasks)
}

func TestGenerateShortHorizonBandsOverlap(t *testing.T) {
	// With 3 total weeks the germination and harvest bands overlap in
	// weeks 1-2; both must contribute.
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 3)

	for _, n := range []int{1, 2} {
		w := r.WeekByNumber(n)
		assert.Contains(t, taskTitles(w.day(Monday)), "Monitor germination progress", "week %d", n)
		assert.Contains(t, taskTitles(w.day(Saturday)), "Check if ready to harvest", "week %d", n)
	}
	assert.Contains(t, taskTitles(r.WeekByNumber(3).day(Saturday)), "Check if ready to harvest")
}

func taskTitles(d *Day) []string {
	var titles []string
	for _, t := range d.Tasks {
		titles = append(titles, t.Title)
	}
	return titles
}

func TestGenerateDeterministicIDs(t *testing.T) {
	p := testPlant(catalog.WaterFewTimes, catalog.MaintenanceHigh)
	a := Generate(p, 6)
	b := Generate(p, 6)

	assert.Equal(t, a, b)

	mon := a.WeekByNumber(1).day(Monday)
	require.NotEmpty(t, mon.Tasks)
	assert.Equal(t, "water-1-Monday", mon.Tasks[0].ID)
}

func TestGenerateClampsTotalWeeks(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 0)
	assert.Equal(t, 1, r.TotalWeeks)
	require.Len(t, r.Weeks, 1)
}

func TestExtendPreservesExistingWeeks(t *testing.T) {
	r := Generate(testPlant(catalog.WaterEveryDay, catalog.MaintenanceLow), 4)
	r.Weeks[0].Days[0].Tasks[0].Completed = true
	before := make([]Week, len(r.Weeks))
	copy(before, r.Weeks)

	Extend(&r, 3)

	assert.Equal(t, 7, r.TotalWeeks)
	require.Len(t, r.Weeks, 7)
	assert.Equal(t, before, r.Weeks[:4])
	for n := 5; n <= 7; n++ {
		w := r.WeekByNumber(n)
		require.NotNil(t, w)
		for _, d := range w.Days {
			assert.Empty(t, d.Tasks)
		}
	}
}

func TestMergeRecommendationsWithinHorizon(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 8)
	recs := []Recommendation{
		{ID: "care-1", Title: "Apply neem oil"},
		{ID: "care-2", Title: "Adjust watering"},
	}

	MergeRecommendations(&r, recs, 3)

	assert.Equal(t, 8, r.TotalWeeks)
	assert.Contains(t, taskTitles(r.WeekByNumber(3).day(Monday)), "Apply neem oil")
	assert.Contains(t, taskTitles(r.WeekByNumber(4).day(Monday)), "Adjust watering")

	task, _, _ := r.Find("care-care-1-3")
	require.NotNil(t, task)
	assert.Equal(t, "Apply neem oil", task.Title)
}

func TestMergeRecommendationsExtendsHorizon(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 4)
	recs := []Recommendation{
		{ID: "a", Title: "One"},
		{ID: "b", Title: "Two"},
		{ID: "c", Title: "Three"},
	}

	// 4+3-1 = 6 > 4, so the routine grows by ceil(3/2) = 2 weeks.
	MergeRecommendations(&r, recs, 4)

	assert.Equal(t, 6, r.TotalWeeks)
	assert.Contains(t, taskTitles(r.WeekByNumber(4).day(Monday)), "One")
	assert.Contains(t, taskTitles(r.WeekByNumber(5).day(Monday)), "Two")
	assert.Contains(t, taskTitles(r.WeekByNumber(6).day(Monday)), "Three")
}

func TestMergeRecommendationsClampsPastHorizon(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 2)
	var recs []Recommendation
	for i := 0; i < 5; i++ {
		recs = append(recs, Recommendation{ID: fmt.Sprintf("r%d", i), Title: fmt.Sprintf("Rec %d", i)})
	}

	MergeRecommendations(&r, recs, 2)

	// Extended by ceil(5/2) = 3 → 5 weeks; targets 2,3,4,5 then clamped to 5.
	assert.Equal(t, 5, r.TotalWeeks)
	last := r.WeekByNumber(5).day(Monday)
	assert.Len(t, last.Tasks, 2)
}

func TestMergeRecommendationsEmpty(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 4)
	before := r.TotalWeeks

	MergeRecommendations(&r, nil, 2)
	assert.Equal(t, before, r.TotalWeeks)
}

func TestFindMissingTask(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 2)
	task, week, day := r.Find("nope")
	assert.Nil(t, task)
	assert.Nil(t, week)
	assert.Nil(t, day)
}

func TestDayComplete(t *testing.T) {
	d := Day{Name: Monday}
	assert.False(t, d.Complete(), "empty day is never complete")

	d.Tasks = []Task{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	assert.False(t, d.Complete())

	d.Tasks[0].Completed = true
	assert.False(t, d.Complete())

	d.Tasks[1].Completed = true
	assert.True(t, d.Complete())
}

func TestTaskCounts(t *testing.T) {
	r := Generate(testPlant(catalog.WaterOnceAWeek, catalog.MaintenanceLow), 1)
	completed, total := r.TaskCounts()
	assert.Equal(t, 0, completed)
	// Week 1: water Monday, germination Monday, harvest Saturday (1 >= 1-2).
	assert.Equal(t, 3, total)

	r.Weeks[0].Days[0].Tasks[0].Completed = true
	completed, _ = r.TaskCounts()
	assert.Equal(t, 1, completed)
}
