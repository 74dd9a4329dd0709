// Package care is the plant lifecycle engine: it generates weekly care
// routines from a plant's attributes, derives progress and growth stage from
// the planting date and task completion, and tracks the daily-care streak.
package care

import (
	"fmt"

	"github.com/fluorish/fluorish/pkg/catalog"
)

// Weekday names a day column of the routine. Weeks always run Monday through
// Sunday in that order, regardless of locale.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekDays is the fixed day order within a routine week.
var WeekDays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Task is a single care action on a specific day. The ID is derived from
// category, week and day, so regenerating a routine reproduces the same IDs.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Day holds the tasks scheduled for one day of a week.
type Day struct {
	Name  Weekday `json:"day"`
	Tasks []Task  `json:"tasks"`
}

// Week is seven days of scheduled tasks.
type Week struct {
	Number int    `json:"weekNumber"`
	Days   []Day  `json:"days"`
}

// Routine is the full generated schedule for a planted instance. Weeks are
// only ever appended, never removed or reordered.
type Routine struct {
	Weeks      []Week `json:"weeks"`
	TotalWeeks int    `json:"totalWeeks"`
}

func emptyWeek(number int) Week {
	days := make([]Day, len(WeekDays))
	for i, name := range WeekDays {
		days[i] = Day{Name: name}
	}
	return Week{Number: number, Days: days}
}

func taskID(category string, week int, day Weekday) string {
	return fmt.Sprintf("%s-%d-%s", category, week, day)
}

func (w *Week) day(name Weekday) *Day {
	for i := range w.Days {
		if w.Days[i].Name == name {
			return &w.Days[i]
		}
	}
	return nil
}

func (w *Week) add(name Weekday, category, title string) {
	d := w.day(name)
	if d == nil {
		return
	}
	d.Tasks = append(d.Tasks, Task{
		ID:    taskID(category, w.Number, name),
		Title: title,
	})
}

// Generate builds a deterministic routine for a plant over totalWeeks weeks.
// All population rules are additive: a day can collect tasks from the
// watering rule, the maintenance rule, and a stage band at once, and
// overlapping stage bands on short horizons both contribute.
func Generate(plant catalog.Plant, totalWeeks int) Routine {
	if totalWeeks < 1 {
		totalWeeks = 1
	}

	weeks := make([]Week, 0, totalWeeks)
	for n := 1; n <= totalWeeks; n++ {
		w := emptyWeek(n)

		switch plant.Watering {
		case catalog.WaterEveryDay:
			for _, name := range WeekDays {
				w.add(name, "water", "Water the plant")
			}
		case catalog.WaterFewTimes:
			for _, name := range []Weekday{Monday, Wednesday, Friday} {
				w.add(name, "water", "Water the plant")
			}
		case catalog.WaterOnceAWeek:
			w.add(Monday, "water", "Water the plant")
		case catalog.WaterEveryTwoWks:
			if n%2 == 1 {
				w.add(Monday, "water", "Water the plant")
			}
		case catalog.WaterMonthly:
			// Every 4th week, starting with week 1.
			if n%4 == 1 {
				w.add(Monday, "water", "Water the plant")
			}
		}

		if plant.Maintenance == catalog.MaintenanceModerate || plant.Maintenance == catalog.MaintenanceHigh {
			w.add(Wednesday, "check", "Check for pests and diseases")
			if plant.Maintenance == catalog.MaintenanceHigh || n%2 == 0 {
				w.add(Friday, "fertilize", "Fertilize the plant")
			}
		}

		if n <= 2 {
			w.add(Monday, "germination", "Monitor germination progress")
		}
		if n > 2 && n <= 4 {
			w.add(Thursday, "vegetative", "Prune if needed")
		}
		if n >= totalWeeks-2 {
			w.add(Saturday, "harvest", "Check if ready to harvest")
		}

		weeks = append(weeks, w)
	}

	return Routine{Weeks: weeks, TotalWeeks: totalWeeks}
}

// Extend appends additionalWeeks empty weeks past the current horizon.
// Existing weeks, their tasks, and completion flags are untouched.
func Extend(r *Routine, additionalWeeks int) {
	for i := 0; i < additionalWeeks; i++ {
		r.TotalWeeks++
		r.Weeks = append(r.Weeks, emptyWeek(r.TotalWeeks))
	}
}

// Recommendation is an externally supplied care action, typically from a
// plant-doctor diagnosis, to be folded into the schedule.
type Recommendation struct {
	ID    string
	Title string
}

// MergeRecommendations schedules recs starting at currentWeek: the i-th
// recommendation lands on the Monday of min(currentWeek+i, TotalWeeks). When
// the insertions would run past the horizon, the routine is first extended by
// ceil(len(recs)/2) recovery weeks.
func MergeRecommendations(r *Routine, recs []Recommendation, currentWeek int) {
	if len(recs) == 0 {
		return
	}
	if currentWeek < 1 {
		currentWeek = 1
	}

	if currentWeek+len(recs)-1 > r.TotalWeeks {
		Extend(r, (len(recs)+1)/2)
	}

	for i, rec := range recs {
		target := currentWeek + i
		if target > r.TotalWeeks {
			target = r.TotalWeeks
		}
		w := &r.Weeks[target-1]
		d := w.day(Monday)
		if d == nil {
			continue
		}
		d.Tasks = append(d.Tasks, Task{
			ID:    fmt.Sprintf("care-%s-%d", rec.ID, target),
			Title: rec.Title,
		})
	}
}

// Find returns the task with the given ID along with its week and day,
// or nil if no such task exists.
func (r *Routine) Find(taskID string) (*Task, *Week, *Day) {
	for wi := range r.Weeks {
		w := &r.Weeks[wi]
		for di := range w.Days {
			d := &w.Days[di]
			for ti := range d.Tasks {
				if d.Tasks[ti].ID == taskID {
					return &d.Tasks[ti], w, d
				}
			}
		}
	}
	return nil, nil, nil
}

// WeekByNumber returns the week with the given 1-based number, or nil.
func (r *Routine) WeekByNumber(n int) *Week {
	for i := range r.Weeks {
		if r.Weeks[i].Number == n {
			return &r.Weeks[i]
		}
	}
	return nil
}

// TaskCounts returns completed and total task counts across the routine.
func (r *Routine) TaskCounts() (completed, total int) {
	for _, w := range r.Weeks {
		for _, d := range w.Days {
			for _, t := range d.Tasks {
				total++
				if t.Completed {
					completed++
				}
			}
		}
	}
	return completed, total
}

// Complete reports whether every task on the day is done. A day with no
// tasks is not considered complete; there is nothing to have done.
func (d *Day) Complete() bool {
	if len(d.Tasks) == 0 {
		return false
	}
	for _, t := range d.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
