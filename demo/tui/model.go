package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"balitai/types"
)

// State represents the application state machine
type State string

const (
	StateIdle     State = "idle"
	StateScanning State = "scanning"
	StateComplete State = "complete"
	StateError    State = "error"
)

// Model represents the TUI client state (thin client over the scan API)
type Model struct {
	Client *ScanClient

	State    State
	Response *types.ScanResponse
	Err      error

	// Connection status
	Connected bool
}

// NewModel creates a new TUI model
func NewModel(serverURL string) Model {
	return Model{
		Client: NewScanClient(serverURL),
		State:  StateIdle,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return checkHealth(m.Client)
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	if !m.Connected {
		return ErrorStyle.Render("❌ Not connected to the scan server")
	}

	switch m.State {
	case StateIdle:
		return HighlightStyle.Render("👋 Ready to scan!") + "\n\n" +
			InfoStyle.Render("Press 's' to scan Philippine news for corruption reports")
	case StateScanning:
		return StatusStyle.Render("⏳ Scanning RSS feeds, this can take a minute...")
	case StateComplete:
		return HighlightStyle.Render("✅ SCAN COMPLETE")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render("❌ Error: " + errMsg)
	default:
		return ""
	}
}
