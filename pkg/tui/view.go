package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fluorish/fluorish/pkg/doctor"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.screen {
	case screenSplash:
		content = m.renderSplash()
	case screenLogin:
		content = m.renderLogin()
	case screenOnboarding:
		content = m.renderOnboarding()
	case screenTabs:
		content = m.renderTabs()
	case screenNewPlant:
		content = m.renderNewPlant()
	case screenDetail:
		content = m.renderDetail()
	case screenDoctor:
		content = m.renderDoctor()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("Fluorish " + IconPlant)
	streak := ""
	if m.screen == screenTabs || m.screen == screenDetail {
		streak = StreakStyle.Render(fmt.Sprintf("  %s %d day streak", IconStreak, m.streak))
	}
	return title + streak + "\n"
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		return "\n" + FooterStyle.Render(m.statusMsg)
	}
	if m.busy {
		return "\n" + m.spin.View() + FooterStyle.Render(m.busyLabel)
	}
	return "\n" + FooterStyle.Render(m.keys.ShortHelp())
}

func (m Model) renderSplash() string {
	logo := HeaderStyle.Render("\n  ❀ Fluorish ❀\n")
	sub := DimStyle.Render("  Your gardening companion")
	return logo + "\n" + sub + "\n\n" + DimStyle.Render("  press any key")
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Welcome back") + "\n\n")
	for i, p := range loginProviders {
		line := "  " + p
		if i == m.loginCursor {
			line = SelectedStyle.Render("> " + p)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + DimStyle.Render("enter to sign in"))
	return b.String()
}

func (m Model) renderOnboarding() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Tell us about your space") + "\n\n")
	b.WriteString(fmt.Sprintf("%s (%d/%d)\n\n",
		InputPromptStyle.Render(onboardPrompts[m.onboardStep]),
		m.onboardStep+1, len(onboardPrompts)))
	b.WriteString(m.onboardInput.View() + "\n\n")
	b.WriteString(DimStyle.Render("enter to continue · esc to skip"))
	return b.String()
}

func (m Model) renderTabs() string {
	var names []string
	for i, name := range tabNames {
		if tab(i) == m.tab {
			names = append(names, ActiveTabStyle.Render(name))
		} else {
			names = append(names, InactiveTabStyle.Render(name))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, names...)

	var body string
	switch m.tab {
	case tabDashboard:
		body = m.renderDashboard()
	case tabPlants:
		body = m.renderPlantList()
	case tabTasks:
		body = m.renderTaskList()
	case tabProfile:
		body = m.renderProfile()
	}
	return bar + "\n\n" + body
}

func (m Model) renderDashboard() string {
	var b strings.Builder

	name := "gardener"
	if u, ok := m.cfg.Session.Current(); ok {
		name = u.Name
	}
	b.WriteString(fmt.Sprintf("Good day, %s!\n\n", name))

	all := m.cfg.Store.All()
	if len(all) == 0 {
		b.WriteString(DimStyle.Render("Nothing planted yet — press n to plant something new.") + "\n")
		return b.String()
	}

	b.WriteString(HeaderCountStyle.Render(fmt.Sprintf("%d plants growing", len(all))) + "\n\n")
	for _, p := range all {
		b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
			IconPlant, p.Name,
			progressBar(20, p.Progress),
			StageStyle.Render(string(p.Stage))))
	}

	pending := 0
	for _, row := range m.todayRows {
		if !row.header && !row.done {
			pending++
		}
	}
	b.WriteString("\n")
	if pending == 0 {
		b.WriteString(CompleteStyle.Render("All of today's tasks are done "+IconComplete) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%d tasks waiting for you today\n", pending))
	}
	return b.String()
}

func (m Model) renderPlantList() string {
	all := m.cfg.Store.All()
	if len(all) == 0 {
		return DimStyle.Render("Nothing planted yet — press n to plant something new.")
	}

	var b strings.Builder
	for i, p := range all {
		line := fmt.Sprintf("%s %s  %3d%%  %s", IconPlant, p.Name, p.Progress, string(p.Stage))
		if i == m.plantCursor {
			b.WriteString(SelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + DimStyle.Render("enter opens plant details"))
	return b.String()
}

func (m Model) renderTaskList() string {
	if len(m.todayRows) == 0 {
		return CompleteStyle.Render("No tasks today — your garden is happy " + IconComplete)
	}

	var b strings.Builder
	for i, row := range m.todayRows {
		if row.header {
			b.WriteString("\n" + HeaderStyle.Render(row.label) + "\n")
			continue
		}
		icon := IconPending
		style := IncompleteStyle
		if row.done {
			icon = IconComplete
			style = CompleteStyle
		}
		line := fmt.Sprintf("%s %s", icon, row.label)
		if i == m.taskCursor {
			b.WriteString(SelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + style.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderProfile() string {
	if m.profileLoading {
		return m.spin.View() + DimStyle.Render("Loading your profile...")
	}
	if m.profileErr != nil {
		return UnhealthyStyle.Render("Couldn't load your profile.") + "\n\n" +
			DimStyle.Render("enter to retry")
	}
	u := m.profileUser
	if u == nil {
		if cur, ok := m.cfg.Session.Current(); ok {
			u = cur
		} else {
			return DimStyle.Render("Not signed in.")
		}
	}

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(u.Name) + "\n\n")
	b.WriteString(ModalLabelStyle.Render("Home zone") + ModalValueStyle.Render(u.HomeZone) + "\n")
	b.WriteString(ModalLabelStyle.Render("Daylight") + ModalValueStyle.Render(u.DaylightHours) + "\n")
	b.WriteString(ModalLabelStyle.Render("Location") + ModalValueStyle.Render(u.Location) + "\n")
	b.WriteString("\n" + DimStyle.Render("L to log out"))
	return b.String()
}

func (m Model) renderNewPlant() string {
	s := m.newPlant

	if s.intro {
		return ModalTitleStyle.Render("Plant something new") + "\n\n" +
			"Answer a few quick questions about your space and habits,\n" +
			"and we'll match you with plants that will actually thrive.\n\n" +
			DimStyle.Render("enter to start · esc to go back")
	}

	if s.onResults() && s.results == nil {
		return ModalTitleStyle.Render("Plant something new") + "\n\n" +
			m.spin.View() + DimStyle.Render("Finding plants that fit...")
	}

	if !s.onResults() {
		q := s.questions[s.step]
		var b strings.Builder
		b.WriteString(ModalTitleStyle.Render(fmt.Sprintf("Question %d of %d", s.step+1, len(s.questions))) + "\n\n")
		b.WriteString(InputPromptStyle.Render(q.Prompt) + "\n\n")
		for i, opt := range q.Options {
			if i == s.optCursor {
				b.WriteString(SelectedStyle.Render("> "+opt) + "\n")
			} else {
				b.WriteString("  " + opt + "\n")
			}
		}
		b.WriteString("\n" + DimStyle.Render("enter select · s skip · esc back"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Recommended for you") + "\n\n")
	for i, p := range s.results {
		line := fmt.Sprintf("%s %s  $%.0f  %d%% success  %s",
			IconPlant, p.Name, p.Price, p.SuccessRate, p.TimeToFirstHarvest)
		if i == s.resCursor {
			b.WriteString(SelectedStyle.Render("> "+line) + "\n")
			b.WriteString(DimStyle.Render("    "+p.Description) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + DimStyle.Render("enter to plant it · esc back to questions"))
	return b.String()
}

func (m Model) renderDetail() string {
	p, err := m.cfg.Store.Get(m.detail.plantID)
	if err != nil {
		return DimStyle.Render("Plant not found.")
	}

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(p.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s %s\n", progressBar(24, p.Progress),
		StageStyle.Render(string(p.Stage)),
		HeaderCountStyle.Render(fmt.Sprintf("(week %d of %d)", p.CurrentWeek(time.Now()), p.Routine.TotalWeeks))))
	b.WriteString(DimStyle.Render(fmt.Sprintf("Planted %s · water: %s · %.1f hrs sun",
		p.PlantedAt.Format("Jan 2"), string(p.Watering), p.SunlightHours)) + "\n\n")

	for i, it := range m.detail.items {
		var line string
		switch {
		case it.IsWeek:
			icon := IconCollapsed
			if it.IsExpanded {
				icon = IconExpanded
			}
			line = fmt.Sprintf("%s Week %d  %s", icon, it.Week.Number, HeaderCountStyle.Render(weekSummary(it.Week)))
		case it.IsDay:
			line = DepthIndent + string(it.Day.Name)
		default:
			icon := IconPending
			style := IncompleteStyle
			if it.Task.Completed {
				icon = IconComplete
				style = CompleteStyle
			}
			line = strings.Repeat(DepthIndent, it.Depth) + style.Render(icon+" "+it.Task.Title)
		}
		if i == m.detail.cursor {
			b.WriteString(SelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + DimStyle.Render("space toggle task · d plant doctor · esc back"))
	return b.String()
}

func (m Model) renderDoctor() string {
	c := m.clinic
	p, err := m.cfg.Store.Get(c.plantID)
	if err != nil {
		return DimStyle.Render("Plant not found.")
	}

	switch c.phase {
	case doctorCameraError:
		return ModalStyle.Render(
			UnhealthyStyle.Render("Camera unavailable") + "\n\n" +
				"We couldn't access your camera.\n" +
				"Press u to upload a photo instead, or esc to go back.")

	case doctorDiagnosing:
		return ModalTitleStyle.Render("Plant Doctor") + "\n\n" +
			m.spin.View() + DimStyle.Render(fmt.Sprintf("Analyzing your %s...", p.Name))
	}

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Plant Doctor") + "\n\n")
	if c.result.Status == doctor.Healthy {
		b.WriteString(HealthyStyle.Render("Healthy "+IconComplete) + "\n\n")
	} else {
		b.WriteString(UnhealthyStyle.Render("Needs attention") + "\n\n")
	}
	b.WriteString(c.result.Summary + "\n\n")

	for _, f := range c.result.Factors {
		style := CompleteStyle
		switch f.Status {
		case doctor.FactorWarning:
			style = WarningStyle
		case doctor.FactorCritical:
			style = CriticalStyle
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", style.Render(f.Name), DimStyle.Render(f.Description)))
	}

	if len(c.result.CareOptions) > 0 {
		b.WriteString("\n" + InputPromptStyle.Render("Recommended care") + "\n")
		for i, opt := range c.result.CareOptions {
			mark := "[ ]"
			if c.selected[opt.ID] {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s  %s", mark, opt.Title,
				HeaderCountStyle.Render(opt.Frequency+" for "+opt.Duration))
			if i == c.cursor {
				b.WriteString(SelectedStyle.Render("> "+line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
		b.WriteString("\n" + DimStyle.Render("space select · enter add to routine · esc back"))
	} else {
		b.WriteString("\n" + DimStyle.Render("enter or esc to go back"))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Keyboard shortcuts") + "\n\n")
	for _, row := range m.keys.FullHelp() {
		b.WriteString(ModalLabelStyle.Render(row[0]) + row[1] + "\n")
	}
	b.WriteString("\n" + DimStyle.Render("esc to close"))
	return ModalStyle.Render(b.String())
}

// progressBar renders a fixed-width bar for a 0-100 percentage.
func progressBar(width, pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := width * pct / 100
	return ProgressFilledStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", pct)
}
