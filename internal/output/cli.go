package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danreyes/reckon/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorIncome  = lipgloss.Color("#10B981") // Green
	colorExpense = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorIncome)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorExpense)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleProject = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleIncome = lipgloss.NewStyle().
			Foreground(colorIncome)

	styleExpense = lipgloss.NewStyle().
			Foreground(colorExpense)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// ProjectName formats a project name.
func (c *CLIFormatter) ProjectName(name string) string {
	if c.IsColorEnabled() {
		return styleProject.Render(name)
	}
	return name
}

// Amount formats a transaction amount, colored by kind.
func (c *CLIFormatter) Amount(tx *model.Transaction) string {
	s := tx.AmountString()
	if !c.IsColorEnabled() {
		return s
	}
	if tx.Kind == model.KindIncome {
		return styleIncome.Render(s)
	}
	return styleExpense.Render(s)
}

// PrintTransaction prints a single transaction row.
func (c *CLIFormatter) PrintTransaction(tx *model.Transaction) {
	note := tx.Note
	if note != "" {
		note = "  " + note
	}
	c.Printf("%s  %-8s %-7s %12s%s\n",
		shortKey(tx.Key),
		tx.Date.Format("2006-01-02"),
		tx.Kind,
		c.Amount(tx),
		note)
}

// shortKey trims a record key to its trailing id fragment for display.
func shortKey(key string) string {
	if len(key) > 8 {
		return key[len(key)-8:]
	}
	return key
}
