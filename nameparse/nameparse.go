package nameparse

import (
	"fmt"
	"strings"
)

func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", " ")
	name = strings.ReplaceAll(name, " ", " ")
	return name
}

// ParseFeedName splits a feed-format golfer name ("Last, First") into
// first, last, and display order. Names without a comma are treated
// as already display-ordered and split on the last space.
func ParseFeedName(name string) (first, last, full string) {
	name = normalize(name)
	if name == "" {
		return "", "", ""
	}

	if idx := strings.Index(name, ","); idx >= 0 {
		last = strings.TrimSpace(name[:idx])
		first = strings.TrimSpace(name[idx+1:])
	} else {
		tokens := strings.Fields(name)
		if len(tokens) == 1 {
			last = tokens[0]
		} else {
			first = strings.Join(tokens[:len(tokens)-1], " ")
			last = tokens[len(tokens)-1]
		}
	}

	full = strings.TrimSpace(first + " " + last)
	return first, last, full
}

// GolferID derives the stable 9-character id for a golfer: up to four
// letters of the last name, one of the first, zero-padded with a
// 2-digit sequence, suffixed upward while the id is already taken.
// "Scheffler, Scottie" becomes "SCHES0100".
func GolferID(first, last string, taken map[string]bool) string {
	base := letters(last, 4) + letters(first, 1)
	for len(base) < 5 {
		base += "X"
	}

	for seq := 1; seq <= 99; seq++ {
		id := fmt.Sprintf("%s%02d00", base, seq)
		if !taken[id] {
			return id
		}
	}
	// 99 collisions on one stem does not happen with real rosters.
	return fmt.Sprintf("%s9999", base)
}

func letters(s string, n int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == n {
				break
			}
		}
	}
	return b.String()
}
