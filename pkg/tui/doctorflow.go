package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluorish/fluorish/pkg/care"
	"github.com/fluorish/fluorish/pkg/doctor"
)

type doctorPhase int

const (
	doctorCameraError doctorPhase = iota
	doctorDiagnosing
	doctorResult
)

// doctorState drives the Plant Doctor flow: capture, a simulated analysis
// delay, then the diagnosis with selectable care options.
type doctorState struct {
	plantID  string
	phase    doctorPhase
	imageRef string
	result   doctor.Result

	// Care option selection (unhealthy results only).
	cursor   int
	selected map[string]bool
}

// startDoctor captures a photo of the current detail plant and begins
// analysis. A capture failure lands on a blocking alert offering the photo
// upload fallback.
func (m Model) startDoctor() (tea.Model, tea.Cmd) {
	p, err := m.cfg.Store.Get(m.detail.plantID)
	if err != nil {
		m.setStatus("Error: " + err.Error())
		return m, nil
	}

	m.screen = screenDoctor
	m.clinic = doctorState{plantID: p.InstanceID}

	imageRef, err := m.cfg.Capture(p.Plant)
	if err != nil {
		m.clinic.phase = doctorCameraError
		return m, nil
	}
	return m.beginDiagnosis(imageRef)
}

func (m Model) beginDiagnosis(imageRef string) (tea.Model, tea.Cmd) {
	m.clinic.phase = doctorDiagnosing
	m.clinic.imageRef = imageRef

	p, err := m.cfg.Store.Get(m.clinic.plantID)
	if err != nil {
		m.setStatus("Error: " + err.Error())
		m.screen = screenDetail
		return m, nil
	}

	m.nonce++
	nonce := m.nonce
	provider := m.cfg.Doctor
	plant := p.Plant
	return m, tea.Batch(
		m.spin.Tick,
		m.after(2500*time.Millisecond, func() tea.Msg {
			return diagnosisReadyMsg{nonce: nonce, result: provider.Diagnose(plant, imageRef)}
		}),
	)
}

func (m Model) handleDoctorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.clinic

	if key.Matches(msg, m.keys.Back) {
		m.nonce++ // drop any in-flight diagnosis
		m.screen = screenDetail
		m.rebuildDetail()
		return m, nil
	}

	switch c.phase {
	case doctorCameraError:
		if msg.String() == "u" {
			p, err := m.cfg.Store.Get(c.plantID)
			if err != nil {
				m.screen = screenDetail
				return m, nil
			}
			return m.beginDiagnosis("upload:" + p.Plant.ID)
		}

	case doctorDiagnosing:
		// Nothing to do but wait or esc out.

	case doctorResult:
		if c.result.Status == doctor.Healthy {
			if key.Matches(msg, m.keys.Enter) {
				m.screen = screenDetail
				m.rebuildDetail()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if c.cursor > 0 {
				c.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if c.cursor < len(c.result.CareOptions)-1 {
				c.cursor++
			}
		case key.Matches(msg, m.keys.Space):
			if c.cursor < len(c.result.CareOptions) {
				id := c.result.CareOptions[c.cursor].ID
				c.selected[id] = !c.selected[id]
			}
		case key.Matches(msg, m.keys.Enter):
			var recs []care.Recommendation
			for _, opt := range c.result.CareOptions {
				if c.selected[opt.ID] {
					recs = append(recs, opt.Recommendation())
				}
			}
			if len(recs) == 0 {
				m.setStatus("Select care options with space first")
				return m, nil
			}
			if err := m.cfg.Store.ApplyRecommendations(c.plantID, recs); err != nil {
				m.setStatus("Error: " + err.Error())
				return m, nil
			}
			m.setStatus("Added care tasks to your routine")
			m.screen = screenDetail
			m.refresh()
			m.rebuildDetail()
		}
	}

	return m, nil
}
