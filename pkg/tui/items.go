package tui

import (
	"fmt"

	"github.com/fluorish/fluorish/pkg/care"
)

// RoutineItem is one visible row of the care-routine accordion: a week header,
// a day header, or a task line.
type RoutineItem struct {
	ID    string
	Depth int

	IsWeek     bool
	IsDay      bool
	IsExpanded bool

	Week *care.Week
	Day  *care.Day
	Task *care.Task

	// PlantID lets the task rows route toggles back to the store.
	PlantID string
}

// FlattenRoutine produces the visible accordion rows for a routine. Collapsed
// weeks contribute only their header; expanded weeks contribute each day that
// has tasks, followed by the day's tasks.
func FlattenRoutine(r *care.Routine, plantID string, expanded map[int]bool) []RoutineItem {
	if r == nil {
		return nil
	}

	var items []RoutineItem
	for i := range r.Weeks {
		w := &r.Weeks[i]
		isOpen := expanded[w.Number]
		items = append(items, RoutineItem{
			ID:         fmt.Sprintf("week-%d", w.Number),
			IsWeek:     true,
			IsExpanded: isOpen,
			Week:       w,
			PlantID:    plantID,
		})
		if !isOpen {
			continue
		}
		for j := range w.Days {
			d := &w.Days[j]
			if len(d.Tasks) == 0 {
				continue
			}
			items = append(items, RoutineItem{
				ID:      fmt.Sprintf("week-%d-%s", w.Number, d.Name),
				Depth:   1,
				IsDay:   true,
				Week:    w,
				Day:     d,
				PlantID: plantID,
			})
			for k := range d.Tasks {
				t := &d.Tasks[k]
				items = append(items, RoutineItem{
					ID:      t.ID,
					Depth:   2,
					Week:    w,
					Day:     d,
					Task:    t,
					PlantID: plantID,
				})
			}
		}
	}
	return items
}

// weekSummary renders the "3/7 done" suffix for a week header.
func weekSummary(w *care.Week) string {
	done, total := 0, 0
	for _, d := range w.Days {
		for _, t := range d.Tasks {
			total++
			if t.Completed {
				done++
			}
		}
	}
	if total == 0 {
		return "no tasks"
	}
	return fmt.Sprintf("%d/%d done", done, total)
}
