package carddb

import "strings"

// typeSeparator splits card types from subtypes on a type line. The card
// data uses an em dash, not a hyphen.
const typeSeparator = "—"

// knownSupertypes is the closed set of words that may precede the card
// types on a type line.
var knownSupertypes = map[string]bool{
	"Basic":      true,
	"Legendary":  true,
	"Snow":       true,
	"World":      true,
	"Elite":      true,
	"Ongoing":    true,
	"Tribal":     true,
	"Host":       true,
	"Dungeon":    true,
	"Background": true,
	"Class":      true,
}

// ParseTypeLine splits a card's printed type line into supertypes, card
// types, and subtypes. Words left of the em dash are supertypes when they
// appear in the known set and card types otherwise; words right of it are
// subtypes. The "//" face separator on split cards is not a type and is
// skipped. Order is preserved and duplicate subtypes collapse to their
// first occurrence.
func ParseTypeLine(line string) (supertypes, types, subtypes []string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil, nil
	}

	typePart, subtypePart, _ := strings.Cut(line, typeSeparator)

	for _, word := range strings.Fields(typePart) {
		if word == "//" {
			continue
		}
		if knownSupertypes[word] {
			supertypes = append(supertypes, word)
		} else {
			types = append(types, word)
		}
	}

	seen := make(map[string]bool)
	for _, word := range strings.Fields(subtypePart) {
		if word == "//" || word == typeSeparator || seen[word] {
			continue
		}
		seen[word] = true
		subtypes = append(subtypes, word)
	}

	return supertypes, types, subtypes
}
