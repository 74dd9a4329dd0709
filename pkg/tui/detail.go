package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// detailState drives the plant-details screen: one plant's vitals plus its
// care routine rendered as a week accordion.
type detailState struct {
	plantID  string
	expanded map[int]bool
	items    []RoutineItem
	cursor   int
}

// openDetail switches to the details screen for a planted instance, with the
// current week pre-expanded.
func (m *Model) openDetail(plantID string) {
	p, err := m.cfg.Store.Get(plantID)
	if err != nil {
		m.setStatus("Error: " + err.Error())
		return
	}
	m.screen = screenDetail
	m.detail = detailState{
		plantID:  p.InstanceID,
		expanded: map[int]bool{p.CurrentWeek(time.Now()): true},
	}
	m.rebuildDetail()
}

func (m *Model) rebuildDetail() {
	d := &m.detail
	p, err := m.cfg.Store.Get(d.plantID)
	if err != nil {
		d.items = nil
		return
	}
	d.items = FlattenRoutine(p.Routine, p.InstanceID, d.expanded)
	if d.cursor >= len(d.items) {
		d.cursor = len(d.items) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.detail

	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenTabs
		m.tab = tabPlants
		m.refresh()

	case key.Matches(msg, m.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if d.cursor < len(d.items)-1 {
			d.cursor++
		}

	case key.Matches(msg, m.keys.Right):
		if d.cursor < len(d.items) && d.items[d.cursor].IsWeek {
			d.expanded[d.items[d.cursor].Week.Number] = true
			m.rebuildDetail()
		}

	case key.Matches(msg, m.keys.Left):
		if d.cursor < len(d.items) {
			it := d.items[d.cursor]
			if it.IsWeek && it.IsExpanded {
				d.expanded[it.Week.Number] = false
				m.rebuildDetail()
			}
		}

	case key.Matches(msg, m.keys.Enter):
		if d.cursor < len(d.items) && d.items[d.cursor].IsWeek {
			n := d.items[d.cursor].Week.Number
			d.expanded[n] = !d.expanded[n]
			m.rebuildDetail()
		}

	case key.Matches(msg, m.keys.Space):
		if d.cursor < len(d.items) && d.items[d.cursor].Task != nil {
			it := d.items[d.cursor]
			if err := m.cfg.Store.ToggleTask(it.PlantID, it.Task.ID); err != nil {
				m.setStatus("Error: " + err.Error())
			}
			m.refresh()
			m.rebuildDetail()
		}

	case key.Matches(msg, m.keys.Doctor):
		return m.startDoctor()
	}

	return m, nil
}
