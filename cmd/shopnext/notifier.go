package main

import (
	"fmt"

	"github.com/fatih/color"
)

// terminalNotifier implements auth.Notifier on the terminal: one short
// line per message, in the manner of a toast.
type terminalNotifier struct{}

func (t *terminalNotifier) Success(message string) {
	fmt.Printf("%s %s\n", color.GreenString("✓"), message)
}

func (t *terminalNotifier) Error(message string) {
	fmt.Printf("%s %s\n", color.RedString("✗"), message)
}
