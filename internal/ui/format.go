// Package ui formats store results for the terminal.
// Uses glamour for markdown and fatih/color for styling.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/aretw0/noted/pkg/core"
)

// DisplaySuffix is appended to note contents when they are shown.
// It is a presentation marker only; the stored text never contains it.
const DisplaySuffix = " ..."

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatTitleList renders enumerated titles, one per line. When capped is
// true a hint says more notes may exist beyond the cap.
func FormatTitleList(titles []string, capped bool) string {
	if len(titles) == 0 {
		return faint("No notes yet.") + "\n"
	}

	var sb strings.Builder
	for i, title := range titles {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(fmt.Sprintf("%d.", i+1)), bold(title)))
	}
	if capped {
		sb.WriteString(faint(fmt.Sprintf("  (showing at most %d notes, use --all to list every note)", len(titles))) + "\n")
	}
	return sb.String()
}

// FormatContent returns note contents with the display suffix.
func FormatContent(content string) string {
	return content + DisplaySuffix
}

// FormatReadResult renders the outcome of a lenient read: the sentinel text
// is shown as an error, anything else as note contents.
func FormatReadResult(text string) string {
	if text == core.ReadErrorText {
		return Error(text)
	}
	return FormatContent(text)
}

// FormatMarkdown renders contents as markdown for the terminal.
func FormatMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

// FormatNoteHeader renders the title line and a separator.
func FormatNoteHeader(title string) string {
	return bold(title) + "\n" + Separator()
}

// FormatEvent renders a change event as a single line.
func FormatEvent(e core.Event) string {
	var verb string
	switch e.Type {
	case core.EventCreate:
		verb = color.New(color.FgGreen).Sprint("created")
	case core.EventModify:
		verb = color.New(color.FgYellow).Sprint("modified")
	case core.EventDelete:
		verb = color.New(color.FgRed).Sprint("deleted")
	default:
		verb = string(e.Type)
	}
	return fmt.Sprintf("%s %s\n", verb, cyan(e.Title))
}

// Separator returns a faint horizontal rule.
func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

// Success prefixes msg with a green check mark.
func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

// Error prefixes msg with a red cross.
func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

// Warning prefixes msg with a yellow bang.
func Warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}

// FormatError turns a store error into a user-facing line.
func FormatError(err error) string {
	switch core.KindOf(err) {
	case core.KindAlreadyExists:
		return Error("A note with that title already exists")
	case core.KindNotFound:
		return Error("No such note")
	case core.KindInvalidInput:
		return Error(fmt.Sprintf("Invalid note: %v", err))
	case core.KindReadOnly:
		return Error("The notes root is read-only")
	default:
		return Error(err.Error())
	}
}
