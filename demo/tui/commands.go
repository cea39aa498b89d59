package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"balitai/types"
)

// checkHealth creates a command that probes the server.
func checkHealth(client *ScanClient) tea.Cmd {
	return func() tea.Msg {
		return HealthCheckMsg{Err: client.Health()}
	}
}

// runScan creates a command that triggers a scan and waits for it.
func runScan(client *ScanClient, query string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Scan(types.ScanRequest{Query: query})
		return ScanCompleteMsg{Response: resp, Err: err}
	}
}
