package sitevoice

import (
	"regexp"
	"strings"
)

// Minimum cleaned-text lengths applied during extraction.
const (
	// MinQuoteLength is the minimum length of a testimonial text.
	MinQuoteLength = 30

	// MinSectionLength is the minimum length of a keyword-matched
	// section fragment.
	MinSectionLength = 50

	// MinValuePropLength is the minimum length of a value proposition.
	MinValuePropLength = 10
)

// StyleDebrisThreshold is the maximum number of '{', '}' or ';' characters
// a serialized fragment may contain before it is classified as inline
// script/style debris rather than content.
const StyleDebrisThreshold = 10

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
	cssRuleRe     = regexp.MustCompile(`\{[^}]*\}`)
	cssDeclRe     = regexp.MustCompile(`[a-z-]+:[^;]+;`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	debrisCharRe  = regexp.MustCompile(`[{};]`)
)

// codePrefixes mark text that leaked out of an inline script despite tag
// stripping.
var codePrefixes = []string{"var ", "function ", "class "}

// CleanText normalizes extracted text: it removes residual script/style
// blocks, tag-like substrings, CSS rule blocks and declarations, collapses
// whitespace runs to single spaces, and trims. Text that still begins with
// a programming-keyword prefix after cleaning is rejected (empty string
// returned) — the primary defense against harvesting inline script
// fragments as content.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = scriptBlockRe.ReplaceAllString(text, "")
	text = styleBlockRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, " ")
	text = cssRuleRe.ReplaceAllString(text, "")
	text = cssDeclRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if HasCodePrefix(text) {
		return ""
	}
	return text
}

// HasCodePrefix reports whether text begins with a programming-keyword
// prefix (var, function, class), case-insensitively.
func HasCodePrefix(text string) bool {
	lower := strings.ToLower(text)
	for _, prefix := range codePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// LooksLikeStyleDebris reports whether a serialized fragment (typically an
// element's outer HTML) carries enough bracket/semicolon density to be
// classified as stylesheet or script debris.
func LooksLikeStyleDebris(fragment string) bool {
	return len(debrisCharRe.FindAllString(fragment, -1)) > StyleDebrisThreshold
}

// ContainsDigit reports whether text contains at least one decimal digit.
// Stats extraction keeps only fragments with a digit.
func ContainsDigit(text string) bool {
	return strings.ContainsAny(text, "0123456789")
}
