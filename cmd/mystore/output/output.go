package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	strikeStyle  = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Print(successStyle.Render("✓ "))
	fmt.Printf(format+"\n", args...)
}

func Warning(format string, args ...interface{}) {
	fmt.Print(warningStyle.Render("⚠ "))
	fmt.Printf(format+"\n", args...)
}

// Error prints an error message to stderr. Multi-line messages are indented
// under the marker.
func Error(msg string) {
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	fmt.Fprint(os.Stderr, errorStyle.Render("✗ "))
	fmt.Fprintln(os.Stderr, lines[0])
	for _, l := range lines[1:] {
		fmt.Fprintln(os.Stderr, "  "+l)
	}
}

func Info(format string, args ...interface{}) {
	fmt.Print(infoStyle.Render("ℹ "))
	fmt.Printf(format+"\n", args...)
}

func Muted(format string, args ...interface{}) {
	fmt.Println(mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a section header
func Section(title string) {
	fmt.Println()
	fmt.Println(primaryStyle.Render(title))
	fmt.Println(mutedStyle.Render(strings.Repeat("═", lipgloss.Width(title))))
}

// Table returns a tabwriter for aligned columns; callers must Flush it.
func Table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func Row(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Price renders a price, showing the list price struck through when a
// discount applies.
func Price(full, discounted decimal.Decimal) string {
	if discounted.Equal(full) {
		return Money(full)
	}
	return strikeStyle.Render(Money(full)) + " " + successStyle.Render(Money(discounted))
}

func StatusIcon(state string) string {
	switch state {
	case "closed":
		return successStyle.Render("✓")
	case "open":
		return warningStyle.Render("○")
	default:
		return mutedStyle.Render("•")
	}
}
