// Package taxonomy maps vendor vocabulary (product names, territory labels)
// onto canonical tags.
//
// Rule tables are ordered slices. Tagging walks every rule and the last rule
// whose match string occurs in the text wins, so a more specific rule must be
// listed after the general rule it refines.
package taxonomy

import "strings"

// Rule maps a match string to a canonical tag
type Rule struct {
	Match string
	Tag   string
}

// Rules is an ordered substring rule table
type Rules []Rule

// Tag returns the tag of the last rule whose Match is a case-sensitive
// substring of text. When nothing matches, or the text is missing
// (present == false), current is returned unchanged.
func (rs Rules) Tag(text string, present bool, current string) string {
	if !present {
		return current
	}
	tag := current
	for _, r := range rs {
		if strings.Contains(text, r.Match) {
			tag = r.Tag
		}
	}
	return tag
}

// Synonyms is an ordered table of whole-value replacements
type Synonyms []Rule

// Replace returns the tag of the last entry equal to value, or value itself
func (s Synonyms) Replace(value string) string {
	out := value
	for _, r := range s {
		if r.Match == value {
			out = r.Tag
		}
	}
	return out
}
