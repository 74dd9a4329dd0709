package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluorish/fluorish/pkg/catalog"
)

type matchDoneMsg struct{ nonce int }

// newPlantState drives the plant-something-new flow: a guidance intro, the
// preference questionnaire, a simulated matching delay, then the ranked
// recommendation list.
type newPlantState struct {
	intro     bool
	questions []catalog.Question
	step      int // index into questions; len(questions) means results
	optCursor int
	prefs     catalog.Preferences

	results   []catalog.Plant
	resCursor int
}

func (m *Model) startNewPlant() {
	m.screen = screenNewPlant
	m.newPlant = newPlantState{intro: true, questions: catalog.Questions()}
}

// onResults reports whether the questionnaire is finished.
func (s newPlantState) onResults() bool {
	return s.step >= len(s.questions)
}

func (m Model) handleNewPlantKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.newPlant

	if key.Matches(msg, m.keys.Back) {
		switch {
		case s.intro:
			m.screen = screenTabs
		case s.onResults():
			// Back into the last question.
			s.step = len(s.questions) - 1
			s.optCursor = 0
			s.results = nil
		case s.step > 0:
			s.step--
			s.optCursor = 0
		default:
			s.intro = true
		}
		return m, nil
	}

	if s.intro {
		if key.Matches(msg, m.keys.Enter) {
			s.intro = false
		}
		return m, nil
	}

	if s.onResults() {
		switch {
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
			if s.resCursor > 0 {
				s.resCursor--
			}
		case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
			if s.resCursor < len(s.results)-1 {
				s.resCursor++
			}
		case key.Matches(msg, m.keys.Enter):
			if s.resCursor < len(s.results) {
				p, err := m.cfg.Store.Add(s.results[s.resCursor])
				if err != nil {
					m.setStatus("Could not plant: " + err.Error())
					return m, nil
				}
				m.refresh()
				m.setStatus("Planted " + p.Name + "!")
				m.openDetail(p.InstanceID)
			}
		}
		return m, nil
	}

	q := s.questions[s.step]
	switch {
	case key.Matches(msg, m.keys.Up):
		if s.optCursor > 0 {
			s.optCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if s.optCursor < len(q.Options)-1 {
			s.optCursor++
		}
	case key.Matches(msg, m.keys.Skip):
		s.prefs.Clear(q.Key)
		return m, m.advanceQuestion()
	case key.Matches(msg, m.keys.Enter):
		s.prefs.Answer(q.Key, q.Options[s.optCursor])
		return m, m.advanceQuestion()
	}
	return m, nil
}

// advanceQuestion steps past the current question. Finishing the last one
// kicks off the simulated plant-matching delay.
func (m *Model) advanceQuestion() tea.Cmd {
	s := &m.newPlant
	s.step++
	s.optCursor = 0
	if !s.onResults() {
		return nil
	}

	m.busy = true
	m.busyLabel = "Finding plants that fit..."
	m.nonce++
	nonce := m.nonce
	return tea.Batch(
		m.spin.Tick,
		m.after(1500*time.Millisecond, func() tea.Msg { return matchDoneMsg{nonce: nonce} }),
	)
}
