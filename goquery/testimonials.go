package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitevoice"
	"golang.org/x/net/html"
)

// Testimonials extracts static testimonial candidates from the page:
// elements whose id/class matches a testimonial pattern, plus blockquote
// and q elements. Author and company labels are resolved from nested
// keyword-classed elements; for bare quote elements the search widens to
// the parent subtree so adjacent attribution lines are found.
func (p *Page) Testimonials() []sitevoice.Candidate {
	seen := make(map[*html.Node]bool)
	var quotes []*goquery.Selection

	collect := func(s *goquery.Selection) {
		node := s.Get(0)
		if seen[node] {
			return
		}
		seen[node] = true
		quotes = append(quotes, s)
	}

	for _, pattern := range sitevoice.TestimonialClassKeywords {
		p.doc.Find("[id],[class]").Each(func(_ int, s *goquery.Selection) {
			if attrKeywordMatch(s, pattern) {
				collect(s)
			}
		})
	}
	p.doc.Find("blockquote,q").Each(func(_ int, s *goquery.Selection) {
		collect(s)
	})

	var candidates []sitevoice.Candidate
	for _, quote := range quotes {
		if sitevoice.LooksLikeStyleDebris(outerHTML(quote)) {
			continue
		}
		text := cleanText(quote)
		if len(text) < sitevoice.MinQuoteLength {
			continue
		}

		candidates = append(candidates, sitevoice.Candidate{
			Text:    text,
			Author:  quoteLabel(quote, sitevoice.AuthorClassKeywords),
			Company: quoteLabel(quote, sitevoice.CompanyClassKeywords),
			Source:  sitevoice.SourceStatic,
		})
	}

	return candidates
}

// quoteLabel looks for an attribution label inside the quote element.
// Bare blockquote/q elements rarely contain their attribution, so for
// those the parent subtree is searched as well.
func quoteLabel(quote *goquery.Selection, keywords []string) string {
	if label := findLabel(quote, "[class]", keywords); label != "" {
		return label
	}
	switch goquery.NodeName(quote) {
	case "blockquote", "q":
		if parent := quote.Parent(); parent.Length() > 0 {
			return findLabel(parent, "[class]", keywords)
		}
	}
	return ""
}

// StoryTestimonials extracts testimonial candidates from a case-study or
// customer-story page: container elements whose class carries a
// testimonial/review/quote/case-study keyword.
func (p *Page) StoryTestimonials() []sitevoice.Candidate {
	var candidates []sitevoice.Candidate

	p.doc.Find("div,article,section").Each(func(_ int, s *goquery.Selection) {
		if !classMatchesAny(s, sitevoice.StoryClassKeywords) {
			return
		}
		if sitevoice.LooksLikeStyleDebris(outerHTML(s)) {
			return
		}
		text := cleanText(s)
		if len(text) < sitevoice.MinQuoteLength {
			return
		}

		candidates = append(candidates, sitevoice.Candidate{
			Text:    text,
			Author:  findLabel(s, "span,div,p", sitevoice.AuthorClassKeywords),
			Company: findLabel(s, "span,div,p", sitevoice.CompanyClassKeywords),
			Source:  sitevoice.SourceCaseStudy,
		})
	})

	return candidates
}
