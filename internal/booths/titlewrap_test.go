package booths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapTitle_SingleWord(t *testing.T) {
	// Single words render on the second line so titles align vertically
	// across the card grid.
	require.Equal(t, [2]string{"", "Acme"}, WrapTitle("Acme"))
	require.Equal(t, [2]string{"", "Interdisciplinary"}, WrapTitle("Interdisciplinary"))
}

func TestWrapTitle_TwoWords(t *testing.T) {
	require.Equal(t, [2]string{"Steel", "Co"}, WrapTitle("Steel Co"))
	require.Equal(t, [2]string{"Northern", "Lights"}, WrapTitle("Northern Lights"))
}

func TestWrapTitle_KnownExceptions(t *testing.T) {
	require.Equal(t, [2]string{"Kids Help", "Phone"}, WrapTitle("Kids Help Phone"))
	require.Equal(t, [2]string{"Ontario Power", "Generation"}, WrapTitle("Ontario Power Generation"))
}

func TestWrapTitle_ShortMultiWord(t *testing.T) {
	// Three-plus words but <= 15 characters total behaves like one word.
	require.Equal(t, [2]string{"", "A B C"}, WrapTitle("A B C"))
	require.Equal(t, [2]string{"", "Tip Top Tailors"}, WrapTitle("Tip Top Tailors"))
}

func TestWrapTitle_GreedyBudget(t *testing.T) {
	tests := []struct {
		title string
		want  [2]string
	}{
		{"Canadian Armed Forces", [2]string{"Canadian Armed", "Forces"}},
		{"Greater Toronto Airports Authority", [2]string{"Greater Toronto", "Airports Authority"}},
		{"The Printing House Limited", [2]string{"The Printing House", "Limited"}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			require.Equal(t, tt.want, WrapTitle(tt.title))
		})
	}
}

func TestWrapTitle_LongTitleProperties(t *testing.T) {
	title := "A Very Long Multi Word Organization Title"
	lines := WrapTitle(title)

	require.NotEmpty(t, lines[0])
	require.NotEmpty(t, lines[1], "a long title always occupies two lines")
	require.LessOrEqual(t, len(lines[0]), lineBudget)

	// Word union equals the input's words, in order.
	rejoined := strings.Fields(lines[0] + " " + lines[1])
	require.Equal(t, strings.Fields(title), rejoined)
}

func TestWrapTitle_NeverCollapsesToOneLine(t *testing.T) {
	// Every word fits under budget, but with three-plus words the trailing
	// word is forced down to keep the card two lines tall.
	lines := WrapTitle("Maple Grove Labs")
	require.Equal(t, [2]string{"Maple Grove", "Labs"}, lines)
}

func TestWrapTitle_OversizedFirstWord(t *testing.T) {
	// A first word over budget still lands on line 1; it is unsplittable.
	lines := WrapTitle("Supercalifragilistic Consulting Group")
	require.Equal(t, "Supercalifragilistic", lines[0])
	require.Equal(t, "Consulting Group", lines[1])
}
