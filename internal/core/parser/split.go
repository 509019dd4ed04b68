package parser

import (
	"regexp"
	"strings"
)

var (
	newlineRuns = regexp.MustCompile(`\n+`)
	// Latin comma plus the Arabic comma used in Hebrew/Arabic keyboard layouts.
	commaSplit = regexp.MustCompile(`[,،]`)
)

// Word lengths accepted by the space-separated-list heuristic. Shorter or
// longer tokens suggest a multi-word phrase rather than a list of items.
const (
	minListWordLen = 2
	maxListWordLen = 20
)

// SplitItems breaks a raw text block into individual item strings, in input
// order. Duplicates are kept. Empty or whitespace-only input yields nil.
//
// Newlines take priority, then commas, then a heuristic for space-separated
// lists: four or more words of plausible item length each become separate
// items, anything else stays a single item so phrases like "ice cream" are
// not torn apart.
func SplitItems(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	if strings.Contains(trimmed, "\n") {
		var items []string
		for _, line := range newlineRuns.Split(trimmed, -1) {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.ContainsAny(line, ",،") {
				items = append(items, splitCommas(line)...)
			} else {
				items = append(items, line)
			}
		}
		return items
	}

	if strings.ContainsAny(trimmed, ",،") {
		return splitCommas(trimmed)
	}

	words := strings.Fields(trimmed)
	if len(words) <= 2 {
		return []string{trimmed}
	}

	couldBeItemList := true
	for _, word := range words {
		n := len([]rune(word))
		if n < minListWordLen || n > maxListWordLen {
			couldBeItemList = false
			break
		}
	}
	if couldBeItemList && len(words) >= 4 {
		return words
	}

	return []string{trimmed}
}

func splitCommas(s string) []string {
	var items []string
	for _, part := range commaSplit.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
