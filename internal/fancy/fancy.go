// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(count),
		),
	)
}

// KeyValue renders a "KEY = value" line. Empty values are shown as "".
func KeyValue(key, value string) string {
	if value == "" {
		value = `""`
	}
	return fmt.Sprintf("%s = %s", KeyText(key), ValueText(value))
}

// TruncateString shortens s to at most maxLength runes, marking the cut
// with "..." when there is room for it. A maxLength of 0 or less disables it.
func TruncateString(s string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
