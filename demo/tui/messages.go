package tui

import "balitai/types"

// Messages for the tea program

// HealthCheckMsg is sent after probing the server.
type HealthCheckMsg struct {
	Err error
}

// ScanCompleteMsg is sent when a scan finishes.
type ScanCompleteMsg struct {
	Response *types.ScanResponse
	Err      error
}
