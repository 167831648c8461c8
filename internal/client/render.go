// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-dataset-loader/internal/app"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

type row struct {
	label string
	value string
}

// renderPage draws a titled box with one aligned label/value pair per line.
func renderPage(title string, rows []row) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.label))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r.label+strings.Repeat(" ", width-len(r.label)))+"  "+r.value)
	}
	if len(lines) == 0 {
		lines = append(lines, "-")
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		strings.Join(lines, "\n"),
	))
}

func renderUploadResult(title string, total int, result models.UploadResult) string {
	return renderPage(title, []row{
		{"items", strconv.Itoa(total)},
		{"uploaded", strconv.Itoa(result.Items)},
		{"batches", strconv.Itoa(result.Batches)},
		{"duplicates", strconv.Itoa(result.Duplicates)},
		{"failed", strconv.Itoa(result.Failed)},
	})
}

// RenderError formats a command failure for the terminal.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render("error: " + app.UserMessage(err))
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
