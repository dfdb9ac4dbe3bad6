// Package cleaner strips parameter echoes from model completions.
package cleaner

import "strings"

// Denylist holds the lowercase fragments that disqualify a line. Matching is a
// plain substring test, so legitimate lines containing one of them are dropped
// too.
var Denylist = []string{
	"paramètre",
	"ton:",
	"format:",
	"longueur:",
	"voici",
	"reformulation",
}

// Clean drops every line of raw that contains a denylisted fragment, rejoins
// the survivors with newlines and trims the result.
func Clean(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if rejected(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// CleanTranslation only trims: translated output is kept whole.
func CleanTranslation(raw string) string {
	return strings.TrimSpace(raw)
}

func rejected(line string) bool {
	lower := strings.ToLower(line)
	for _, fragment := range Denylist {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
