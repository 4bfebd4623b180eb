package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func widthOf(s string) int {
	return lipgloss.Width(s)
}

func longText(n int) string {
	words := make([]string, 0, n/5+1)
	for len(strings.Join(words, " ")) < n {
		words = append(words, "word")
	}
	return strings.Join(words, " ")
}
