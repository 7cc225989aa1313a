// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes used by plain fmt output such as the logo
var (
	Green = "\033[92m"
	Reset = "\033[0m"
)

// Styles groups the lipgloss styles used by command output
type Styles struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

var styles = NewStyles(detectTerminalMode())

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// NewStyles creates the output styles for the given terminal mode
func NewStyles(mode TerminalMode) *Styles {
	if mode == TerminalModeLight {
		Green = "\033[32m"
		return &Styles{
			Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
			Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		}
	}
	return &Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}
