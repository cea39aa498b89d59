package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"balitai/demo/tui"
)

func main() {
	_ = godotenv.Load()

	defaultURL := os.Getenv("SCAN_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	apiURL := flag.String("url", defaultURL, "base URL of the scan API")
	flag.Parse()

	// Ctrl+C and 'q' are handled inside the model, so no signal plumbing here.
	program := tea.NewProgram(tui.NewModel(*apiURL), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}
