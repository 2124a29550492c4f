package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/gallows"
	"github.com/lox/hangman/internal/game"
)

const (
	paneLog   = 0
	paneInput = 1

	sidebarMinWidth = 28
)

type messageKind int

const (
	messageInfo messageKind = iota
	messageWarning
	messageError
	messageSuccess
)

// TUIModel represents the Bubble Tea model for a hangman game. It only reads
// session state and forwards single characters to Session.Guess.
type TUIModel struct {
	session *game.Session
	art     gallows.Art
	logger  *log.Logger
	clock   quartz.Clock

	// UI components
	logViewport viewport.Model
	guessInput  textinput.Model

	// State
	gameLog     []string
	message     string
	messageKind messageKind
	started     time.Time
	finished    time.Time
	quitting    bool
	focusedPane int

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

type tickMsg time.Time

// NewTUIModel creates a new TUI model for session
func NewTUIModel(session *game.Session, art gallows.Art, logger *log.Logger, clock quartz.Clock) *TUIModel {
	return NewTUIModelWithOptions(session, art, logger, clock, false)
}

// NewTUIModelWithOptions creates a new TUI model with test mode option
func NewTUIModelWithOptions(session *game.Session, art gallows.Art, logger *log.Logger, clock quartz.Clock, testMode bool) *TUIModel {
	// Sized properly when the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Type a letter"
	ti.Focus()
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "Guess: "

	m := &TUIModel{
		session:     session,
		art:         art,
		logger:      logger.WithPrefix("tui"),
		clock:       clock,
		logViewport: vp,
		guessInput:  ti,
		gameLog:     []string{},
		started:     clock.Now(),
		focusedPane: paneInput,
		testMode:    testMode,
		capturedLog: []string{},
	}
	m.checkGameOver()
	return m
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		if m.finished.IsZero() {
			cmds = append(cmds, tick())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == paneLog && !m.IsOver() {
				m.focusedPane = paneInput
				m.guessInput.Focus()
			} else {
				m.focusedPane = paneLog
				m.guessInput.Blur()
			}
			return m, nil
		case "enter":
			if m.IsOver() {
				m.quitting = true
				return m, tea.Sequence(tea.ClearScreen, tea.Quit)
			}
		}

		if m.focusedPane == paneLog {
			switch msg.String() {
			case "up", "k":
				m.logViewport.ScrollUp(1)
			case "down", "j":
				m.logViewport.ScrollDown(1)
			case "pgup", "b":
				m.logViewport.HalfPageUp()
			case "pgdown", "f":
				m.logViewport.HalfPageDown()
			case "home", "g":
				m.logViewport.GotoTop()
			case "end", "G":
				m.logViewport.GotoBottom()
			}
			return m, nil
		}
	}

	if m.focusedPane == paneInput {
		var cmd tea.Cmd
		m.guessInput, cmd = m.guessInput.Update(msg)
		cmds = append(cmds, cmd)

		// The field is watched keystroke by keystroke; its last rune is the guess.
		if value := m.guessInput.Value(); value != "" {
			last, _ := utf8.DecodeLastRuneInString(value)
			m.guessInput.SetValue("")
			m.HandleGuess(string(last))
		}
	}

	return m, tea.Batch(cmds...)
}

// HandleGuess forwards token to the session and records the outcome.
func (m *TUIModel) HandleGuess(token string) {
	if m.IsOver() {
		return
	}

	if guessed, err := m.session.HasBeenGuessed(token); err == nil && guessed {
		m.setMessage(messageWarning, fmt.Sprintf("Already tried %q", token))
		return
	}

	indices, err := m.session.Guess(token)
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		m.logger.Debug("Rejected guess", "token", token, "error", err)
		m.setMessage(messageError, fmt.Sprintf("%q is not a letter", token))
		return
	case err != nil:
		m.logger.Error("Guess failed", "token", token, "error", err)
		m.setMessage(messageError, err.Error())
		return
	}

	status := m.session.Status()
	if len(indices) > 0 {
		m.AddLogEntry(fmt.Sprintf("%s  hit x%d  %s", token, len(indices), m.session.Revealed()))
		m.setMessage(messageSuccess, fmt.Sprintf("%q is in there", token))
	} else {
		m.AddLogEntry(fmt.Sprintf("%s  miss  %d/%d", token, status.Missed, status.MaxMisses))
		m.setMessage(messageWarning, fmt.Sprintf("No %q. %d misses left", token, status.Remaining()))
	}

	m.checkGameOver()
}

func (m *TUIModel) checkGameOver() {
	status := m.session.Status()
	if !status.IsOver() || !m.finished.IsZero() {
		return
	}

	m.finished = m.clock.Now()
	m.guessInput.Blur()
	m.focusedPane = paneLog

	if status.IsWon() {
		m.AddBoldLogEntry(fmt.Sprintf("Solved %q in %s", m.session.Target(), formatElapsed(m.Elapsed())))
		m.setMessage(messageSuccess, "You win!")
	} else {
		m.AddBoldLogEntry(fmt.Sprintf("Hanged! The answer was %q", m.session.Target()))
		m.setMessage(messageError, "You lose.")
	}
	m.logger.Info("Game over", "won", status.IsWon(), "status", status.String(), "elapsed", m.Elapsed())
}

// IsOver reports whether the session has been won or lost
func (m *TUIModel) IsOver() bool {
	return m.session.Status().IsOver()
}

// Elapsed returns the time since the game started, frozen once it ends
func (m *TUIModel) Elapsed() time.Duration {
	end := m.finished
	if end.IsZero() {
		end = m.clock.Now()
	}
	return end.Sub(m.started)
}

// Message returns the text of the current status message
func (m *TUIModel) Message() string {
	return m.message
}

func (m *TUIModel) setMessage(kind messageKind, text string) {
	m.messageKind = kind
	m.message = text
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Sidebar (right of the board)
	sidebarContent := m.renderSidebarPane()
	calculatedSidebarWidth := max(sidebarMinWidth, lipgloss.Width(sidebarContent))

	// Board (top left)
	boardContent := m.renderBoardPane()
	boardHeight := max(lipgloss.Height(boardContent), lipgloss.Height(sidebarContent))
	calculatedBoardWidth := max(m.width-calculatedSidebarWidth-4, 1) // Account for border x 2 and sidebar

	boardPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(calculatedBoardWidth).
		Height(boardHeight).
		Render(boardContent)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(calculatedSidebarWidth).
		Height(boardHeight).
		Render(sidebarContent)

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)

	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1))
	if m.focusedPane == paneInput {
		actionStyle = actionStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	actionPane := actionStyle.Render(actionContent)

	// Log pane (fills the remaining height)
	calculatedLogWidth := max(m.width-2, 1)
	calculatedLogHeight := max(m.height-boardHeight-actionHeight-6, 1) // Account for three bordered panes

	m.logViewport.SetContent(m.renderLogPane())
	m.logViewport.Width = calculatedLogWidth
	m.logViewport.Height = calculatedLogHeight

	// On first proper sizing, start at the latest entry
	if !m.initialized && calculatedLogWidth > 1 && calculatedLogHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(calculatedLogWidth).
		Height(calculatedLogHeight)
	if m.focusedPane == paneLog {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, logPane, actionPane)
}

// renderBoardPane renders the gallows and the revealed target
func (m *TUIModel) renderBoardPane() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("Hangman"))
	content.WriteString(" ")
	content.WriteString(InfoStyle.Render(m.session.String()))
	content.WriteString("\n\n")

	status := m.session.Status()
	if stage := m.art.Stage(status.Missed, status.MaxMisses); stage != "" {
		content.WriteString(ArtStyle.Render(stage))
		content.WriteString("\n\n")
	}

	content.WriteString(RevealedStyle.Render(m.session.Revealed()))
	return content.String()
}

// renderSidebarPane renders the status counters and the failed letters
func (m *TUIModel) renderSidebarPane() string {
	var content strings.Builder
	status := m.session.Status()

	content.WriteString(WarningStyle.Render(status.String()))
	content.WriteString("\n\n")

	content.WriteString(InfoStyle.Render("Failed chars:"))
	content.WriteString("\n")
	missed := m.session.Missed()
	if len(missed) == 0 {
		content.WriteString("  -")
	} else {
		letters := make([]string, len(missed))
		for i, r := range missed {
			letters[i] = string(r)
		}
		content.WriteString("  " + MissedStyle.Render(strings.Join(letters, " ")))
	}
	content.WriteString("\n\n")

	content.WriteString(InfoStyle.Render(fmt.Sprintf("Misses left: %d", status.Remaining())))
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("Time: " + formatElapsed(m.Elapsed())))

	return content.String()
}

// renderLogPane renders the guess history
func (m *TUIModel) renderLogPane() string {
	return GameLogStyle.Render(strings.Join(m.gameLog, "\n"))
}

// renderActionPane renders the message line, input field and help
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	if m.message != "" {
		content.WriteString(m.messageStyle().Render(m.message))
		content.WriteString("\n")
	}

	if !m.IsOver() {
		content.WriteString(m.guessInput.View())
		content.WriteString("\n")
	}

	help := "Tab to scroll log • Esc to quit"
	switch {
	case m.IsOver():
		help = "Enter or Esc to quit • ↑↓ scroll log"
	case m.focusedPane == paneLog:
		help = "Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"
	}
	content.WriteString(InfoStyle.Render(help))

	return content.String()
}

func (m *TUIModel) messageStyle() lipgloss.Style {
	switch m.messageKind {
	case messageSuccess:
		return SuccessStyle
	case messageWarning:
		return WarningStyle
	case messageError:
		return ErrorStyle
	default:
		return InfoStyle
	}
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return // Skip UI updates in test mode
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// AddBoldLogEntry adds a bold entry to the top of the game log
func (m *TUIModel) AddBoldLogEntry(entry string) {
	boldEntry := lipgloss.NewStyle().Bold(true).Render(entry)

	if m.testMode {
		m.capturedLog = append([]string{entry}, m.capturedLog...)
		m.gameLog = append([]string{boldEntry}, m.gameLog...)
		return // Skip UI updates in test mode
	}

	m.gameLog = append([]string{boldEntry}, m.gameLog...)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoTop()
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
