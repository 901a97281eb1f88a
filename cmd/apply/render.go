package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"media-buyer-intake/pkg/form"
)

var (
	brandRed = lipgloss.Color("#D92121")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(brandRed).
			Padding(1, 3)
	taglineStyle = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ADE80"))
	pendingStyle = lipgloss.NewStyle().Italic(true).Faint(true)
)

func renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Elite Media Buyer Network"),
		taglineStyle.Render("Partner with Convert2Freedom and unlock unprecedented scaling potential"),
	)
}

// terminalRenderer prints feedback whenever the status or the field errors change.
type terminalRenderer struct {
	out    io.Writer
	logger *zap.Logger
	last   form.View
}

func newTerminalRenderer(out io.Writer, logger *zap.Logger) *terminalRenderer {
	return &terminalRenderer{out: out, logger: logger}
}

func (r *terminalRenderer) Render(v form.View) {
	if v.Errors != r.last.Errors && v.Errors.Any() {
		fmt.Fprintln(r.out, renderFieldErrors(v.Errors))
	}
	if v.Status != r.last.Status {
		if v.Status.Phase == form.PhaseSubmitting {
			r.logger.Debug("Submitting application", zap.Any("payload", v.State.Payload()))
		}
		if line := renderStatus(v.Status); line != "" {
			fmt.Fprintln(r.out, line)
		}
	}
	r.last = v
}

func renderFieldErrors(errs form.FieldErrors) string {
	names := make([]string, 0, len(errs.Fields()))
	for _, f := range errs.Fields() {
		names = append(names, describeField(f))
	}
	return errorStyle.Render("Please complete: " + strings.Join(names, ", "))
}

func renderStatus(s form.Status) string {
	switch s.Phase {
	case form.PhaseSubmitting:
		return pendingStyle.Render("Submitting application...")
	case form.PhaseSuccess:
		return successStyle.Render(s.Message)
	case form.PhaseError:
		return errorStyle.Render(s.Message)
	}
	return ""
}
