package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/linguist/pkg/linguist"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconSwatch  = "●"
	absent      = "—"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed detail line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Language Output
// =============================================================================

// printLanguage renders a language as a key/value card.
func printLanguage(w io.Writer, lang *linguist.Language) {
	fmt.Fprintln(w, swatch(lang.Color)+StyleTitle.Render(lang.Name))
	for _, kv := range languageFields(lang) {
		printKeyValue(w, kv[0], kv[1])
	}
}

// languageFields lists the displayed fields of lang in card order.
func languageFields(lang *linguist.Language) [][2]string {
	return [][2]string{
		{"type", lang.Type},
		{"id", strconv.Itoa(lang.LanguageID)},
		{"color", orAbsent(lang.Color)},
		{"group", orAbsent(lang.Group)},
		{"aliases", joinList(lang.Aliases)},
		{"extensions", joinList(lang.Extensions)},
		{"interpreters", joinList(lang.Interpreters)},
		{"tm_scope", orAbsent(lang.TMScope)},
		{"ace_mode", orAbsent(lang.AceMode)},
		{"codemirror", orAbsent(lang.CodemirrorMode)},
		{"mime type", orAbsent(lang.CodemirrorMimeType)},
	}
}

// languageTable renders langs as a bordered table.
func languageTable(langs []*linguist.Language) string {
	rows := make([][]string, 0, len(langs))
	for _, l := range langs {
		rows = append(rows, []string{
			l.Name,
			l.Type,
			strconv.Itoa(l.LanguageID),
			orAbsent(l.Group),
			truncate(joinList(l.Extensions), 40),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Name", "Type", "ID", "Group", "Extensions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}

// swatch renders a colored dot for hex color c, or nothing.
func swatch(c string) string {
	if c == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(iconSwatch) + " "
}

// joinList distinguishes an absent list from an empty one.
func joinList(values []string) string {
	switch {
	case values == nil:
		return absent
	case len(values) == 0:
		return "(none)"
	default:
		return strings.Join(values, ", ")
	}
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
