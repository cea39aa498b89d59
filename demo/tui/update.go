package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HealthCheckMsg:
		return m.handleHealthCheck(msg)
	case ScanCompleteMsg:
		return m.handleScanComplete(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s", "S":
		if m.State == StateIdle || m.State == StateComplete || m.State == StateError {
			m.State = StateScanning
			m.Err = nil
			return m, runScan(m.Client, "")
		}
	}
	return m, nil
}

// handleHealthCheck processes the initial server probe
func (m Model) handleHealthCheck(msg HealthCheckMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Connected = false
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Connected = true
	m.State = StateIdle
	return m, nil
}

// handleScanComplete processes scan completion
func (m Model) handleScanComplete(msg ScanCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Response = msg.Response
	m.State = StateComplete
	return m, nil
}
