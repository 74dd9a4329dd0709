package tui

import "github.com/charmbracelet/lipgloss"

// Color palette — garden greens with warm accents.
var (
	ColorGreen       = lipgloss.Color("#25A065")
	ColorGreenDark   = lipgloss.Color("#1B7A4C")
	ColorLeaf        = lipgloss.Color("#8CC084")
	ColorBlue        = lipgloss.Color("#4285F4")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorOrange      = lipgloss.Color("#D19A66")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorSelectionBg = lipgloss.Color("#22372B")
)

// Header and footer styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Tab styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorGreen).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				Padding(0, 1)
)

// List item styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	NormalStyle = lipgloss.NewStyle()

	CompleteStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	IncompleteStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	StageStyle = lipgloss.NewStyle().
			Foreground(ColorLeaf)

	StreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange)

	DepthIndent = "  "
)

// Diagnosis styles
var (
	HealthyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	UnhealthyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	CriticalStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGreen).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	ModalLabelStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Width(14)

	ModalValueStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)
)

// Input styles
var (
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)
)

// Progress bar styles
var (
	ProgressFilledStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	ProgressEmptyStyle  = lipgloss.NewStyle().Foreground(ColorGrayDim)
)

// Icons
const (
	IconComplete  = "✓"
	IconPending   = "○"
	IconExpanded  = "▼"
	IconCollapsed = "▶"
	IconPlant     = "❀"
	IconStreak    = "🔥"
)
