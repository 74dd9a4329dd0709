// Package plants owns the user's collection of planted instances. The Store
// is the sole writer of the persisted snapshot and the single mutation entry
// point for care routines; every change recomputes the derived progress and
// stage so they can never drift from their inputs.
package plants

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fluorish/fluorish/pkg/care"
	"github.com/fluorish/fluorish/pkg/catalog"
	"github.com/fluorish/fluorish/pkg/kvstore"
)

const plantsKey = "plants"

// ErrNotFound is returned when a plant or task identifier doesn't resolve.
// Callers recover by navigating back to the collection, not by surfacing it.
var ErrNotFound = errors.New("not found")

// Planted is a catalog plant the user has committed to growing, plus its
// timeline and task state. Progress and Stage are derived fields: they are
// recomputed from (PlantedAt, routine completion, now) on every mutation and
// on load, never set independently.
type Planted struct {
	InstanceID string `json:"instanceId"`
	catalog.Plant
	PlantedAt time.Time     `json:"plantedDate"`
	Routine   *care.Routine `json:"careRoutine,omitempty"`
	Progress  int           `json:"progress"`
	Stage     care.Stage    `json:"currentStage,omitempty"`
}

// CurrentWeek returns the instance's 1-based routine week as of now.
func (p *Planted) CurrentWeek(now time.Time) int {
	total := catalog.HarvestWeeks(p.TimeToFirstHarvest)
	if p.Routine != nil {
		total = p.Routine.TotalWeeks
	}
	return care.CurrentWeek(p.PlantedAt, total, now)
}

// Store is the aggregate over the planted collection and the streak record.
type Store struct {
	kv     kvstore.KV
	now    func() time.Time
	streak *care.StreakTracker

	plants []*Planted
	subs   []func()
}

// NewStore loads the collection from storage. Absent or corrupt data yields
// an empty collection; loaded instances missing a planting date, routine,
// progress or stage are backfilled deterministically before first use.
func NewStore(kv kvstore.KV, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		kv:     kv,
		now:    now,
		streak: care.NewStreakTracker(kv, now),
	}
	s.Reload()
	return s
}

// Reload re-reads the persisted snapshot, replacing the in-memory collection.
func (s *Store) Reload() {
	s.plants = nil

	raw, ok := s.kv.Get(plantsKey)
	if !ok || raw == "" {
		return
	}
	var loaded []*Planted
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		// Corrupt snapshot — treat as no data.
		return
	}

	changed := false
	for _, p := range loaded {
		if s.backfill(p) {
			changed = true
		}
	}
	s.plants = loaded
	if changed {
		s.persist()
	}
}

// backfill fills in missing derived state on a loaded instance. Returns true
// if anything was written.
func (s *Store) backfill(p *Planted) bool {
	changed := false
	if p.InstanceID == "" {
		p.InstanceID = uuid.NewString()
		changed = true
	}
	if p.PlantedAt.IsZero() {
		p.PlantedAt = s.now()
		changed = true
	}
	if p.Routine == nil {
		r := care.Generate(p.Plant, catalog.HarvestWeeks(p.TimeToFirstHarvest))
		p.Routine = &r
		changed = true
	}
	if s.recompute(p) {
		changed = true
	}
	return changed
}

// recompute re-derives progress and stage. Returns true if either changed.
func (s *Store) recompute(p *Planted) bool {
	progress := care.ProgressWithTasks(p.PlantedAt, p.Routine.TotalWeeks, p.Routine, s.now())
	stage := care.StageFromProgress(progress)
	if progress == p.Progress && stage == p.Stage {
		return false
	}
	p.Progress = progress
	p.Stage = stage
	return true
}

func (s *Store) persist() error {
	raw, err := json.Marshal(s.plants)
	if err != nil {
		return fmt.Errorf("encoding plants: %w", err)
	}
	if err := s.kv.Set(plantsKey, string(raw)); err != nil {
		return fmt.Errorf("saving plants: %w", err)
	}
	s.notify()
	return nil
}

// Subscribe registers a callback fired after every persisted mutation, so
// views refresh on change instead of polling storage.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// All returns the planted collection in insertion order.
func (s *Store) All() []*Planted {
	return s.plants
}

// Get resolves a planted instance by its instance ID (catalog ID accepted as
// a fallback for snapshots written before instance IDs existed).
func (s *Store) Get(id string) (*Planted, error) {
	for _, p := range s.plants {
		if p.InstanceID == id || p.Plant.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("plant %s: %w", id, ErrNotFound)
}

// Add plants a catalog entry: stamps the planting time, generates the care
// routine from the harvest horizon, derives progress and stage, and persists.
func (s *Store) Add(plant catalog.Plant) (*Planted, error) {
	totalWeeks := catalog.HarvestWeeks(plant.TimeToFirstHarvest)
	routine := care.Generate(plant, totalWeeks)

	p := &Planted{
		InstanceID: uuid.NewString(),
		Plant:      plant,
		PlantedAt:  s.now(),
		Routine:    &routine,
	}
	s.recompute(p)

	s.plants = append(s.plants, p)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return p, nil
}

// ToggleTask flips a task's completed flag. This is the only mutation path
// for routines: it always recomputes progress and stage, and when the toggle
// completes the last open task of its day, it records today's care toward
// the streak.
func (s *Store) ToggleTask(plantID, taskID string) error {
	p, err := s.Get(plantID)
	if err != nil {
		return err
	}
	if p.Routine == nil {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}

	task, _, day := p.Routine.Find(taskID)
	if task == nil {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}

	task.Completed = !task.Completed
	s.recompute(p)

	if task.Completed && day.Complete() {
		s.streak.MarkCompletedToday()
	}

	return s.persist()
}

// ApplyRecommendations merges externally supplied care actions into the
// instance's routine at its current week, extending the horizon when needed.
func (s *Store) ApplyRecommendations(plantID string, recs []care.Recommendation) error {
	p, err := s.Get(plantID)
	if err != nil {
		return err
	}
	if p.Routine == nil || len(recs) == 0 {
		return nil
	}

	care.MergeRecommendations(p.Routine, recs, p.CurrentWeek(s.now()))
	s.recompute(p)
	return s.persist()
}

// Streak exposes the streak tracker (validated reads, completion marking).
func (s *Store) Streak() *care.StreakTracker {
	return s.streak
}

// TodayGroup is one plant's task list for the current day.
type TodayGroup struct {
	Plant *Planted
	Week  int
	Day   care.Weekday
	Tasks []care.Task
}

// TodayTasks returns, for each plant with unfinished work today, the full
// task list of the current week's current day. Plants whose day is already
// fully complete (or has nothing scheduled) are skipped.
func (s *Store) TodayTasks() []TodayGroup {
	now := s.now()
	today := care.Today(now)

	var groups []TodayGroup
	for _, p := range s.plants {
		if p.Routine == nil {
			continue
		}
		week := p.Routine.WeekByNumber(p.CurrentWeek(now))
		if week == nil {
			continue
		}
		var day *care.Day
		for i := range week.Days {
			if week.Days[i].Name == today {
				day = &week.Days[i]
				break
			}
		}
		if day == nil || len(day.Tasks) == 0 {
			continue
		}
		incomplete := 0
		for _, t := range day.Tasks {
			if !t.Completed {
				incomplete++
			}
		}
		if incomplete == 0 {
			continue
		}
		groups = append(groups, TodayGroup{
			Plant: p,
			Week:  week.Number,
			Day:   today,
			Tasks: day.Tasks,
		})
	}
	return groups
}
