// Package tui implements the interactive local-branch selection using
// Bubble Tea, used by 'clean --interactive'.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bral/git-trunk-go/internal/gitcmd"
	"github.com/bral/git-trunk-go/internal/types"
)

// --- Styles ---
var (
	docStyle           = lipgloss.NewStyle().Margin(1, 2)
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	cursorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headingStyle       = lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1)
	confirmPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	warningStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	successStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	protectedStyle     = lipgloss.NewStyle().Faint(true)
)

// ViewState represents the different views the TUI can be in.
type ViewState int

const (
	// StateSelecting is the initial state for branch selection.
	StateSelecting ViewState = iota
	// StateConfirming is the state for confirming deletions.
	StateConfirming
	// StateDeleting is the state shown while deletions are in progress.
	StateDeleting
	// StateResults is the state showing the outcome of deletions.
	StateResults
)

const (
	checkboxUnselectable = "[-]"
	checkboxUnchecked    = "[ ]"
)

// resultsMsg carries the deletion results back to the TUI after execution.
type resultsMsg struct {
	results []types.DeleteResult
}

// Model represents the state of the interactive cleanup.
type Model struct {
	Ctx       context.Context
	Branches  []types.AnalyzedBranch
	Cursor    int
	Selected  map[int]bool // Keyed by index into Branches
	ViewState ViewState
	Results   []types.DeleteResult
	Spinner   spinner.Model
	Width     int
	Height    int
}

// InitialModel creates the starting model. Protected and current branches
// come first so the dangerous rows sit together at the bottom.
func InitialModel(ctx context.Context, analyzedBranches []types.AnalyzedBranch) Model {
	s := spinner.New()
	s.Style = spinnerStyle
	s.Spinner = spinner.Dot

	ordered := make([]types.AnalyzedBranch, 0, len(analyzedBranches))
	for _, branch := range analyzedBranches {
		if branch.Category != types.CategoryDeletable {
			ordered = append(ordered, branch)
		}
	}
	for _, branch := range analyzedBranches {
		if branch.Category == types.CategoryDeletable {
			ordered = append(ordered, branch)
		}
	}

	return Model{
		Ctx:       ctx,
		Branches:  ordered,
		Selected:  make(map[int]bool),
		Cursor:    0,
		ViewState: StateSelecting,
		Spinner:   s,
	}
}

// Init is the first command that runs when the Bubble Tea program starts.
func (m Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// performDeletionCmd is a tea.Cmd that executes the branch deletions.
func performDeletionCmd(ctx context.Context, branches []types.LocalBranch) tea.Cmd {
	return func() tea.Msg {
		results := gitcmd.DeleteLocalBranches(ctx, branches)
		return resultsMsg{results: results}
	}
}

// isSelectable checks if the branch at the given index can be selected.
func (m Model) isSelectable(index int) bool {
	if index < 0 || index >= len(m.Branches) {
		return false
	}
	return m.Branches[index].Category == types.CategoryDeletable
}

// SelectedBranches returns the raw branches currently marked for deletion.
func (m Model) SelectedBranches() []types.LocalBranch {
	branches := make([]types.LocalBranch, 0, len(m.Selected))
	for index := range m.Selected {
		if m.isSelectable(index) {
			branches = append(branches, m.Branches[index].LocalBranch)
		}
	}
	return branches
}

// Update handles messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case resultsMsg:
		m.Results = msg.results
		m.ViewState = StateResults
		return m, nil

	case spinner.TickMsg:
		if m.ViewState == StateDeleting {
			m.Spinner, cmd = m.Spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.ViewState {
		case StateSelecting:
			return m.updateSelecting(msg)
		case StateConfirming:
			return m.updateConfirming(msg)
		case StateDeleting:
			// Ignore key presses while deleting.
			return m, nil
		case StateResults:
			// Any key press quits.
			return m, tea.Quit
		}
	}

	return m, nil
}

// updateSelecting handles key presses when in the selecting state.
func (m Model) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.Branches)
	if total == 0 {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < total-1 {
			m.Cursor++
		}

	case " ": // Toggle selection
		if m.isSelectable(m.Cursor) {
			if m.Selected[m.Cursor] {
				delete(m.Selected, m.Cursor)
			} else {
				m.Selected[m.Cursor] = true
			}
		}

	case "a": // Select every deletable branch
		allSelected := true
		for i := range m.Branches {
			if m.isSelectable(i) && !m.Selected[i] {
				allSelected = false
				break
			}
		}
		for i := range m.Branches {
			if m.isSelectable(i) {
				if allSelected {
					delete(m.Selected, i)
				} else {
					m.Selected[i] = true
				}
			}
		}

	case "enter":
		if len(m.Selected) > 0 {
			m.ViewState = StateConfirming
		}
	}

	return m, nil
}

// updateConfirming handles key presses when in the confirming state.
func (m Model) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "n", "N", "esc":
		m.ViewState = StateSelecting
		return m, nil
	case "y", "Y":
		m.ViewState = StateDeleting
		return m, tea.Batch(
			performDeletionCmd(m.Ctx, m.SelectedBranches()),
			m.Spinner.Tick,
		)
	}
	return m, nil
}

// --- View helpers ---

func (m Model) renderSelectingState(b *strings.Builder) {
	b.WriteString(headingStyle.Render("Local branches (Space: select, a: all, Enter: confirm):") + "\n\n")

	for i, branch := range m.Branches {
		cursor := " "
		if m.Cursor == i {
			cursor = cursorStyle.Render(">")
		}

		checkbox := checkboxUnselectable
		label := ""
		switch branch.Category {
		case types.CategoryCurrent:
			label = protectedStyle.Render("(Current)")
		case types.CategoryProtected:
			label = protectedStyle.Render("(Protected)")
		case types.CategoryDeletable:
			checkbox = checkboxUnchecked
			if m.Selected[i] {
				checkbox = selectedStyle.Render("[x]")
			}
		}

		line := fmt.Sprintf("%s %s %s", checkbox, branch.Name, label)
		switch {
		case branch.Category != types.CategoryDeletable:
			b.WriteString(cursor + " " + protectedStyle.Render(line) + "\n")
		case m.Cursor == i:
			b.WriteString(cursor + " " + selectedStyle.Render(line) + "\n")
		default:
			b.WriteString(cursor + " " + line + "\n")
		}
	}

	if len(m.Branches) == 0 {
		b.WriteString(helpStyle.Render("No local branches found.") + "\n")
	}

	footer := fmt.Sprintf("\nSelected: %d | Enter: Confirm | q/Ctrl+C: Quit\n", len(m.Selected))
	b.WriteString(helpStyle.Render(footer))
}

func (m Model) renderConfirmingState(b *strings.Builder) {
	b.WriteString("Confirm Deletions:\n\n")

	branches := m.SelectedBranches()
	for _, branch := range branches {
		b.WriteString(warningStyle.Render(fmt.Sprintf("  - Delete '%s' (forced)\n", branch.Name)))
	}
	b.WriteString("\n" + warningStyle.Render(
		"WARNING: Forced deletion discards any unmerged work on these branches!") + "\n")
	b.WriteString("\n" + confirmPromptStyle.Render("Proceed? (y/N) "))
}

func (m Model) renderDeletingState(b *strings.Builder) {
	b.WriteString(m.Spinner.View())
	b.WriteString(" Deleting branches...")
}

func (m Model) renderResultsState(b *strings.Builder) {
	b.WriteString("Deletion Results:\n\n")
	if len(m.Results) > 0 {
		for _, res := range m.Results {
			style := successStyle
			status := "✅ Success"
			if !res.Success {
				style = errorStyle
				status = "❌ Failed"
			}
			line := fmt.Sprintf("%s: %s - %s", status, res.Name, res.Message)
			b.WriteString(style.Render(line) + "\n")
		}
	} else {
		b.WriteString(helpStyle.Render("(No deletion actions were performed)\n"))
	}
	b.WriteString(helpStyle.Render("\nPress any key to exit."))
}

// View renders the UI based on the model's state.
func (m Model) View() string {
	var b strings.Builder

	switch m.ViewState {
	case StateSelecting:
		m.renderSelectingState(&b)
	case StateConfirming:
		m.renderConfirmingState(&b)
	case StateDeleting:
		m.renderDeletingState(&b)
	case StateResults:
		m.renderResultsState(&b)
	}

	return docStyle.Render(b.String())
}
