package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fluorish/fluorish/pkg/catalog"
	"github.com/fluorish/fluorish/pkg/doctor"
	"github.com/fluorish/fluorish/pkg/plants"
	"github.com/fluorish/fluorish/pkg/profile"
)

// StateChangedMsg is sent when the storage watcher detects an external change.
type StateChangedMsg struct{}

// RefreshMsg asks the model to rebuild its derived rows from current state.
type RefreshMsg struct{}

type splashDoneMsg struct{ nonce int }

type loginDoneMsg struct{ nonce int }

type profileFetchedMsg struct {
	nonce int
	user  *profile.User
	err   error
}

type diagnosisReadyMsg struct {
	nonce  int
	result doctor.Result
}

type screen int

const (
	screenSplash screen = iota
	screenLogin
	screenOnboarding
	screenTabs
	screenNewPlant
	screenDetail
	screenDoctor
)

type tab int

const (
	tabDashboard tab = iota
	tabPlants
	tabTasks
	tabProfile
)

var tabNames = [...]string{"Dashboard", "My Plants", "My Tasks", "Profile"}

var loginProviders = [...]string{"Continue with Google", "Continue with Apple", "Continue with Email"}

// onboarding question prompts, answered in order.
var onboardPrompts = [...]string{
	"Where is your garden? (city)",
	"How many hours of direct sunlight does it get per day?",
	"How tall is your growing space, in feet?",
	"How large is your growing area, in square feet?",
}

// Config wires the model to the application's stores and providers.
type Config struct {
	Store   *plants.Store
	Session *profile.Session
	Catalog []catalog.Plant
	Doctor  doctor.Provider
	Capture doctor.Capture

	// ReloadKV re-reads the backing file before the store reloads; nil when
	// the store is purely in-memory.
	ReloadKV func() error
}

// todayRow is one rendered line of the My Tasks tab: either a plant header or
// a toggleable task.
type todayRow struct {
	header  bool
	label   string
	plantID string
	taskID  string
	done    bool
}

// Model is the Bubble Tea model for the gardening companion TUI.
type Model struct {
	cfg  Config
	keys KeyMap

	width  int
	height int

	screen screen
	tab    tab

	// Dashboard / lists
	plantCursor int
	todayRows   []todayRow
	taskCursor  int
	streak      int

	// Login
	loginCursor int

	// Onboarding
	onboardStep  int
	onboardInput textinput.Model
	onboardVals  [4]string

	// Sub-flows
	newPlant newPlantState
	detail   detailState
	clinic   doctorState

	// Profile tab
	profileUser    *profile.User
	profileErr     error
	profileLoading bool

	// Async guard: messages carrying a stale nonce are dropped, so an
	// abandoned flow can't complete into a different screen.
	nonce int

	busy      bool
	busyLabel string
	spin      spinner.Model

	showHelp      bool
	statusMsg     string
	statusTimeout time.Time
}

// NewModel creates the TUI model.
func NewModel(cfg Config) Model {
	ti := textinput.New()
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorGreen)

	m := Model{
		cfg:          cfg,
		keys:         DefaultKeyMap(),
		onboardInput: ti,
		spin:         sp,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.WindowSize(),
		m.after(1200*time.Millisecond, func() tea.Msg { return splashDoneMsg{nonce: m.nonce} }),
	)
}

// after schedules fn on a simulated delay.
func (m Model) after(d time.Duration, fn func() tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return fn() })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, tea.ClearScreen

	case StateChangedMsg:
		if m.cfg.ReloadKV != nil {
			if err := m.cfg.ReloadKV(); err != nil {
				m.setStatus("Reload failed: " + err.Error())
				return m, nil
			}
		}
		m.cfg.Store.Reload()
		m.refresh()
		return m, nil

	case RefreshMsg:
		m.refresh()
		return m, nil

	case splashDoneMsg:
		if msg.nonce != m.nonce || m.screen != screenSplash {
			return m, nil
		}
		if m.cfg.Session.LoggedIn() {
			if _, ok := m.cfg.Session.Current(); ok {
				m.enterTabs()
				return m, nil
			}
		}
		m.screen = screenLogin
		return m, nil

	case loginDoneMsg:
		if msg.nonce != m.nonce {
			return m, nil
		}
		m.busy = false
		provider := loginProviders[m.loginCursor]
		if _, err := m.cfg.Session.Login(provider); err != nil {
			m.setStatus("Sign-in failed: " + err.Error())
			return m, nil
		}
		m.startOnboarding()
		return m, nil

	case profileFetchedMsg:
		if msg.nonce != m.nonce {
			return m, nil
		}
		m.profileLoading = false
		m.profileUser = msg.user
		m.profileErr = msg.err
		return m, nil

	case matchDoneMsg:
		if msg.nonce != m.nonce || m.screen != screenNewPlant {
			return m, nil
		}
		m.busy = false
		m.newPlant.results = catalog.Recommend(m.cfg.Catalog, m.newPlant.prefs)
		m.newPlant.resCursor = 0
		return m, nil

	case diagnosisReadyMsg:
		if msg.nonce != m.nonce || m.screen != screenDoctor {
			return m, nil
		}
		m.clinic.phase = doctorResult
		m.clinic.result = msg.result
		m.clinic.cursor = 0
		m.clinic.selected = make(map[string]bool)
		return m, nil

	case spinner.TickMsg:
		if m.waiting() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.screen == screenOnboarding {
		var cmd tea.Cmd
		m.onboardInput, cmd = m.onboardInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works outside text entry.
	if m.screen != screenOnboarding && key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) && m.screen != screenOnboarding {
		m.showHelp = true
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch m.screen {
	case screenSplash:
		// Any key skips the splash.
		m.nonce++
		if m.cfg.Session.LoggedIn() {
			if _, ok := m.cfg.Session.Current(); ok {
				m.enterTabs()
				return m, nil
			}
		}
		m.screen = screenLogin
		return m, nil

	case screenLogin:
		return m.handleLoginKeys(msg)

	case screenOnboarding:
		return m.handleOnboardingKeys(msg)

	case screenTabs:
		return m.handleTabKeys(msg)

	case screenNewPlant:
		return m.handleNewPlantKeys(msg)

	case screenDetail:
		return m.handleDetailKeys(msg)

	case screenDoctor:
		return m.handleDoctorKeys(msg)
	}
	return m, nil
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.loginCursor > 0 {
			m.loginCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.loginCursor < len(loginProviders)-1 {
			m.loginCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.busy = true
		m.busyLabel = "Signing you in..."
		m.nonce++
		nonce := m.nonce
		return m, tea.Batch(
			m.spin.Tick,
			m.after(900*time.Millisecond, func() tea.Msg { return loginDoneMsg{nonce: nonce} }),
		)
	}
	return m, nil
}

func (m *Model) startOnboarding() {
	m.screen = screenOnboarding
	m.onboardStep = 0
	m.onboardVals = [4]string{}
	m.onboardInput.Reset()
	m.onboardInput.Placeholder = "Mumbai"
	m.onboardInput.Focus()
}

func (m Model) handleOnboardingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Skip onboarding; the canned profile stands in.
		m.screen = screenTabs
		m.enterTabs()
		return m, nil

	case tea.KeyEnter:
		val := strings.TrimSpace(m.onboardInput.Value())
		if val == "" {
			m.setStatus("Please enter an answer (esc skips onboarding)")
			return m, nil
		}
		if m.onboardStep > 0 {
			if _, err := strconv.ParseFloat(val, 64); err != nil {
				m.setStatus("Please enter a number")
				return m, nil
			}
		}
		m.onboardVals[m.onboardStep] = val
		m.onboardStep++
		if m.onboardStep < len(onboardPrompts) {
			m.onboardInput.Reset()
			m.onboardInput.Placeholder = [4]string{"Mumbai", "4.5", "6", "65"}[m.onboardStep]
			return m, textinput.Blink
		}

		sun, _ := strconv.ParseFloat(m.onboardVals[1], 64)
		height, _ := strconv.ParseFloat(m.onboardVals[2], 64)
		area, _ := strconv.ParseFloat(m.onboardVals[3], 64)
		if err := m.cfg.Session.ApplyOnboarding(m.onboardVals[0], sun, height, area); err != nil {
			m.setStatus("Could not save your answers: " + err.Error())
		}
		m.enterTabs()
		return m, nil

	default:
		var cmd tea.Cmd
		m.onboardInput, cmd = m.onboardInput.Update(msg)
		return m, cmd
	}
}

func (m *Model) enterTabs() {
	m.screen = screenTabs
	m.tab = tabDashboard
	m.refresh()
}

func (m Model) handleTabKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tab(len(tabNames))
		return m.enterTab()

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab - 1 + tab(len(tabNames))) % tab(len(tabNames))
		return m.enterTab()

	case key.Matches(msg, m.keys.Reload):
		if m.cfg.ReloadKV != nil {
			if err := m.cfg.ReloadKV(); err != nil {
				m.setStatus("Reload failed: " + err.Error())
				return m, nil
			}
		}
		m.cfg.Store.Reload()
		m.refresh()
		m.setStatus("Reloaded")
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.startNewPlant()
		return m, nil
	}

	switch m.tab {
	case tabPlants:
		return m.handlePlantsTab(msg)
	case tabTasks:
		return m.handleTasksTab(msg)
	case tabProfile:
		return m.handleProfileTab(msg)
	}
	return m, nil
}

// enterTab runs a tab's on-entry work, like kicking off the profile fetch.
func (m Model) enterTab() (tea.Model, tea.Cmd) {
	if m.tab == tabProfile && m.profileUser == nil && !m.profileLoading {
		return m.fetchProfile()
	}
	return m, nil
}

func (m Model) fetchProfile() (tea.Model, tea.Cmd) {
	m.profileLoading = true
	m.profileErr = nil
	m.nonce++
	nonce := m.nonce
	session := m.cfg.Session
	return m, tea.Batch(
		m.spin.Tick,
		m.after(700*time.Millisecond, func() tea.Msg {
			u, err := session.SimulatedFetch()
			return profileFetchedMsg{nonce: nonce, user: u, err: err}
		}),
	)
}

func (m Model) handlePlantsTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	all := m.cfg.Store.All()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.plantCursor > 0 {
			m.plantCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.plantCursor < len(all)-1 {
			m.plantCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.plantCursor < len(all) {
			m.openDetail(all[m.plantCursor].InstanceID)
		}
	}
	return m, nil
}

func (m Model) handleTasksTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.taskCursor = prevTaskRow(m.todayRows, m.taskCursor)
	case key.Matches(msg, m.keys.Down):
		m.taskCursor = nextTaskRow(m.todayRows, m.taskCursor)
	case key.Matches(msg, m.keys.Space), key.Matches(msg, m.keys.Enter):
		if m.taskCursor < len(m.todayRows) && !m.todayRows[m.taskCursor].header {
			row := m.todayRows[m.taskCursor]
			if err := m.cfg.Store.ToggleTask(row.plantID, row.taskID); err != nil {
				m.setStatus("Error: " + err.Error())
			}
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) handleProfileTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logout):
		m.cfg.Session.Logout()
		m.profileUser = nil
		m.profileErr = nil
		m.nonce++
		m.screen = screenLogin
		m.setStatus("Logged out")
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if m.profileErr != nil {
			return m.fetchProfile()
		}
	}
	return m, nil
}

// prevTaskRow moves the cursor up, skipping header rows.
func prevTaskRow(rows []todayRow, cur int) int {
	for i := cur - 1; i >= 0; i-- {
		if !rows[i].header {
			return i
		}
	}
	return cur
}

// nextTaskRow moves the cursor down, skipping header rows.
func nextTaskRow(rows []todayRow, cur int) int {
	for i := cur + 1; i < len(rows); i++ {
		if !rows[i].header {
			return i
		}
	}
	return cur
}

// refresh rebuilds everything derived from store state: today's task rows,
// the validated streak, and the detail accordion if it's open.
func (m *Model) refresh() {
	if m.cfg.Store == nil {
		return
	}
	m.streak = m.cfg.Store.Streak().Recompute()

	m.todayRows = m.todayRows[:0]
	for _, g := range m.cfg.Store.TodayTasks() {
		m.todayRows = append(m.todayRows, todayRow{
			header: true,
			label:  fmt.Sprintf("%s — Week %d, %s", g.Plant.Name, g.Week, g.Day),
		})
		for _, t := range g.Tasks {
			m.todayRows = append(m.todayRows, todayRow{
				label:   t.Title,
				plantID: g.Plant.InstanceID,
				taskID:  t.ID,
				done:    t.Completed,
			})
		}
	}
	if m.taskCursor >= len(m.todayRows) {
		m.taskCursor = len(m.todayRows) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
	if m.taskCursor < len(m.todayRows) && m.todayRows[m.taskCursor].header {
		m.taskCursor = nextTaskRow(m.todayRows, m.taskCursor)
	}

	all := m.cfg.Store.All()
	if m.plantCursor >= len(all) {
		m.plantCursor = len(all) - 1
	}
	if m.plantCursor < 0 {
		m.plantCursor = 0
	}

	if m.screen == screenDetail || m.screen == screenDoctor {
		m.rebuildDetail()
	}
}

// waiting reports whether a simulated delay is in flight, keeping the
// spinner ticking only while there is something to wait for.
func (m Model) waiting() bool {
	return m.busy || m.profileLoading ||
		(m.screen == screenDoctor && m.clinic.phase == doctorDiagnosing)
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}
