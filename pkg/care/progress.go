package care

import (
	"math"
	"time"
)

// Stage is a discrete growth phase derived from progress.
type Stage string

const (
	StagePlanting    Stage = "Planting"
	StageGermination Stage = "Germination"
	StageVegetative  Stage = "Vegetative"
	StageFlowering   Stage = "Flowering"
	StageFruiting    Stage = "Fruiting"
	StageHarvesting  Stage = "Harvesting"
	// StageDormant is declared for a future plant-failure path; nothing
	// derives it today.
	StageDormant Stage = "Dormant"
)

func daysSince(plantedAt, now time.Time) int {
	d := int(now.Sub(plantedAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Progress returns the elapsed-time growth percentage: whole days since
// plantedAt over the totalWeeks*7 horizon, clamped to [0,100] and rounded.
// It is monotonic non-decreasing in now for a fixed plantedAt and horizon.
func Progress(plantedAt time.Time, totalWeeks int, now time.Time) int {
	if totalWeeks < 1 {
		totalWeeks = 1
	}
	totalDays := float64(totalWeeks * 7)
	frac := float64(daysSince(plantedAt, now)) / totalDays
	if frac > 1 {
		frac = 1
	}
	return int(math.Round(frac * 100))
}

// ProgressWithTasks blends elapsed time with actual care behavior: the mean
// of the elapsed-time fraction and the routine's overall completion ratio,
// as a rounded percentage. A routine with no tasks falls back to pure
// elapsed time so an empty schedule cannot cap progress at 50.
//
// This is the policy the plant store uses; it rewards users who do the work
// instead of rewarding idleness.
func ProgressWithTasks(plantedAt time.Time, totalWeeks int, r *Routine, now time.Time) int {
	if totalWeeks < 1 {
		totalWeeks = 1
	}
	completed, total := 0, 0
	if r != nil {
		completed, total = r.TaskCounts()
	}
	if total == 0 {
		return Progress(plantedAt, totalWeeks, now)
	}

	totalDays := float64(totalWeeks * 7)
	timeFrac := float64(daysSince(plantedAt, now)) / totalDays
	if timeFrac > 1 {
		timeFrac = 1
	}
	taskFrac := float64(completed) / float64(total)

	return int(math.Round((timeFrac + taskFrac) / 2 * 100))
}

// StageFromProgress maps a progress percentage to a growth stage. It is total
// on [0,100] and never returns StageDormant.
func StageFromProgress(progress int) Stage {
	switch {
	case progress < 10:
		return StagePlanting
	case progress < 20:
		return StageGermination
	case progress < 50:
		return StageVegetative
	case progress < 70:
		return StageFlowering
	case progress < 90:
		return StageFruiting
	default:
		return StageHarvesting
	}
}

// CurrentWeek returns the 1-based routine week for now, clamped to
// [1, totalWeeks].
func CurrentWeek(plantedAt time.Time, totalWeeks int, now time.Time) int {
	if totalWeeks < 1 {
		totalWeeks = 1
	}
	week := daysSince(plantedAt, now)/7 + 1
	if week < 1 {
		week = 1
	}
	if week > totalWeeks {
		week = totalWeeks
	}
	return week
}

// Today maps the clock's weekday to the routine's day name.
func Today(now time.Time) Weekday {
	// Sunday-first, matching time.Weekday's numbering.
	days := [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	return days[now.Weekday()]
}
