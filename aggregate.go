package sitevoice

import "strings"

// AggregateTestimonials merges candidate lists from all extraction
// strategies into the final deduplicated testimonial set. Lists are
// consumed in the order given, which encodes extractor priority
// (static → dynamic → case-study → embedded); the first candidate seen
// for a normalized text wins and later duplicates are discarded
// regardless of source.
func AggregateTestimonials(lists ...[]Candidate) []Testimonial {
	seen := make(map[string]bool)
	testimonials := []Testimonial{}

	for _, list := range lists {
		for _, c := range list {
			text := strings.TrimSpace(c.Text)
			if len(text) < MinQuoteLength || HasCodePrefix(text) {
				continue
			}

			key := NormalizeQuote(text)
			if seen[key] {
				continue
			}
			seen[key] = true

			author, company := SplitAttribution(
				strings.TrimSpace(c.Author),
				strings.TrimSpace(c.Company),
			)

			testimonials = append(testimonials, Testimonial{
				Text:     text,
				Author:   author,
				Company:  company,
				Source:   c.Source,
				Platform: c.Platform,
			})
		}
	}

	return testimonials
}

// SplitAttribution resolves combined "name at/from company" attribution
// strings into separate author and company fields. The heuristic only
// applies when the author field is set and no separate company was found:
// comma-splitting is tried first ("Name, Company"), then splitting on the
// token "at", then scanning for a title/position word and treating the
// remainder as the company. If no heuristic matches, the author is kept
// as-is and the company remains unset.
//
// The position-word pass is a known precision/recall tradeoff inherited
// from the keyword tables: it can mangle names or companies that contain
// title words.
func SplitAttribution(author, company string) (string, string) {
	if author == "" || company != "" {
		return author, CleanCompany(company)
	}

	if strings.Contains(author, ",") {
		parts := strings.Split(author, ",")
		return strings.TrimSpace(parts[0]), CleanCompany(strings.TrimSpace(parts[len(parts)-1]))
	}

	if i := strings.Index(author, " at "); i >= 0 {
		return strings.TrimSpace(author[:i]), CleanCompany(strings.TrimSpace(author[i+len(" at "):]))
	}

	for _, word := range PositionWords {
		i := strings.Index(author, word)
		if i < 0 {
			continue
		}
		rest := strings.TrimSpace(author[i+len(word):])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "of "))
		name := strings.TrimSpace(author[:i]) + " " + word
		return name, CleanCompany(rest)
	}

	return author, ""
}

// CleanCompany strips residual title/department words out of a resolved
// company string.
func CleanCompany(company string) string {
	if company == "" {
		return ""
	}
	var kept []string
	for _, word := range strings.Fields(company) {
		stop := false
		for _, sw := range CompanyStopWords {
			if word == sw {
				stop = true
				break
			}
		}
		if !stop {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}
