package booths

import "strings"

const (
	// shortTitleMax is the length at or under which a multi-word title still
	// renders on the second line only, like a single word.
	shortTitleMax = 15
	// lineBudget is the per-line character budget for the greedy wrap.
	lineBudget = 18
)

// wrapExceptions are known titles whose automatic split reads badly on the
// card grid. An exact match here overrides every other rule.
var wrapExceptions = map[string][2]string{
	"Kids Help Phone":          {"Kids Help", "Phone"},
	"Ontario Power Generation": {"Ontario Power", "Generation"},
	"College of Trades":        {"College of", "Trades"},
	"Skilled Trades Ontario":   {"Skilled Trades", "Ontario"},
}

// WrapTitle splits a booth title into exactly two display lines for the card
// grid. Single-word and short titles go on the second line with a blank
// first line, so titles align vertically across the grid; longer titles wrap
// greedily under the per-line budget and always occupy both lines.
func WrapTitle(title string) [2]string {
	title = strings.TrimSpace(title)
	if lines, ok := wrapExceptions[title]; ok {
		return lines
	}

	words := strings.Fields(title)
	switch {
	case len(words) <= 1:
		return [2]string{"", title}
	case len(words) == 2:
		return [2]string{words[0], words[1]}
	case len(title) <= shortTitleMax:
		return [2]string{"", title}
	}

	// Greedy pass: accumulate whole words onto line 1 while the running
	// length stays under budget, forcing at least one word.
	var first []string
	length := 0
	split := len(words)
	for i, w := range words {
		next := length + len(w)
		if length > 0 {
			next++ // separating space
		}
		if next > lineBudget && len(first) > 0 {
			split = i
			break
		}
		first = append(first, w)
		length = next
	}

	// A title long enough to reach this branch must occupy two lines; if
	// every word fit under budget, push the trailing word down.
	if split == len(words) {
		split = len(words) - 1
		first = first[:split]
	}

	return [2]string{strings.Join(first, " "), strings.Join(words[split:], " ")}
}
