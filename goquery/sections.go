package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitevoice"
)

// Sections extracts the labeled content sections of the page. For each
// section kind it matches elements whose id/class contains one of the
// kind's keyword synonyms, then scans h1–h3 headings containing a keyword
// and collects sibling content up to the next heading. Fragments are
// deduplicated per kind by exact match, preserving first-seen order.
func (p *Page) Sections() sitevoice.ContentSections {
	sections := sitevoice.ContentSections{}

	for _, kind := range sitevoice.SectionKinds() {
		keywords := sitevoice.SectionKeywords[kind]

		seen := make(map[string]bool)
		var fragments []string
		add := func(text string) {
			if text == "" || seen[text] {
				return
			}
			seen[text] = true
			fragments = append(fragments, text)
		}

		// Elements tagged with a kind keyword in their id or class.
		for _, kw := range keywords {
			p.doc.Find("[id],[class]").Each(func(_ int, s *goquery.Selection) {
				if !attrKeywordMatch(s, kw) {
					return
				}
				if len(strings.TrimSpace(s.Text())) <= sitevoice.MinSectionLength {
					return
				}
				if sitevoice.LooksLikeStyleDebris(outerHTML(s)) {
					return
				}
				if text := cleanText(s); len(text) > sitevoice.MinSectionLength {
					add(text)
				}
			})
		}

		// Headings containing a kind keyword, plus their trailing content.
		p.doc.Find("h1,h2,h3").Each(func(_ int, h *goquery.Selection) {
			if !containsAny(strings.ToLower(h.Text()), keywords) {
				return
			}
			add(contentAfterHeading(h))
		})

		if len(fragments) > 0 {
			sections.Append(kind, strings.Join(fragments, " "))
		}
	}

	return sections
}

// contentAfterHeading collects cleaned sibling content between a heading
// and the next h1–h3 heading. Navigation subtrees and style debris are
// skipped; fragments shorter than the testimonial minimum are dropped.
func contentAfterHeading(h *goquery.Selection) string {
	var parts []string

	h.NextAll().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3":
			return false
		case "p", "div", "section":
			if s.ParentsFiltered("nav").Length() > 0 {
				return true
			}
			if sitevoice.LooksLikeStyleDebris(outerHTML(s)) {
				return true
			}
			if text := cleanText(s); len(text) > sitevoice.MinQuoteLength {
				parts = append(parts, text)
			}
		}
		return true
	})

	return strings.Join(parts, " ")
}
