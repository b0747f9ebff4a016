package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitevoice"
)

// EmbeddedTestimonials extracts testimonial candidates from embedded
// third-party content. Video embeds are recognized by platform URL
// patterns and must be co-located with a testimonial indicator; their
// text is reconstructed from nearby title and description elements since
// the embed itself is unreadable. Review-widget iframes are matched by
// provider keywords and read from sibling containers (iframe content is
// cross-origin).
func (p *Page) EmbeddedTestimonials() []sitevoice.Candidate {
	var candidates []sitevoice.Candidate

	p.doc.Find("video,iframe,div").Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if src == "" {
			src = s.AttrOr("data-src", "")
		}
		outer := strings.ToLower(outerHTML(s))

		if platform := sitevoice.MatchVideoPlatform(src); platform != "" &&
			containsAny(outer, sitevoice.TestimonialIndicators) {
			if c, ok := videoCandidate(s, platform); ok {
				candidates = append(candidates, c)
			}
			return
		}

		if goquery.NodeName(s) == "iframe" && containsAny(outer, sitevoice.WidgetProviders) {
			candidates = append(candidates, widgetCandidates(s)...)
		}
	})

	return candidates
}

// videoCandidate reconstructs a testimonial from the metadata surrounding
// a recognized video embed.
func videoCandidate(s *goquery.Selection, platform string) (sitevoice.Candidate, bool) {
	parent := s.ParentsFiltered("div,section").First()
	if parent.Length() == 0 {
		return sitevoice.Candidate{}, false
	}

	title := cleanText(parent.Find("h1,h2,h3,h4,.title,.video-title").First())
	desc := cleanText(parent.Find("p,.description,.video-description").First())

	var parts []string
	if title != "" {
		parts = append(parts, title)
	}
	if desc != "" {
		parts = append(parts, desc)
	}
	text := strings.Join(parts, " ")
	if len(text) < sitevoice.MinQuoteLength {
		return sitevoice.Candidate{}, false
	}

	author, company := "Anonymous", "Unknown"
	if label := findLabel(parent, "p,div,span", sitevoice.EmbedCustomerKeywords); label != "" {
		author, company = splitCustomerLabel(label)
	}

	return sitevoice.Candidate{
		Text:     text,
		Author:   author,
		Company:  company,
		Source:   sitevoice.SourceVideo,
		Platform: platform,
	}, true
}

// widgetCandidates reads review text from the containers around a
// review-widget iframe.
func widgetCandidates(iframe *goquery.Selection) []sitevoice.Candidate {
	parent := iframe.ParentsFiltered("div,section").First()
	if parent.Length() == 0 {
		return nil
	}

	var candidates []sitevoice.Candidate
	parent.Find("div,p").Each(func(_ int, review *goquery.Selection) {
		if !classMatchesAny(review, sitevoice.WidgetReviewKeywords) {
			return
		}
		text := cleanText(review)
		if len(text) < sitevoice.MinQuoteLength {
			return
		}

		author, company := "Anonymous", "Unknown"
		if label := reviewAuthorLabel(review); label != "" {
			author, company = splitCustomerLabel(label)
		}

		candidates = append(candidates, sitevoice.Candidate{
			Text:    text,
			Author:  author,
			Company: company,
			Source:  sitevoice.SourceWidget,
		})
	})

	return candidates
}

// reviewAuthorLabel resolves attribution for one widget review: inside
// the review first, then forward through its following siblings.
func reviewAuthorLabel(review *goquery.Selection) string {
	if label := findLabel(review, "div,span,p", sitevoice.WidgetAuthorKeywords); label != "" {
		return label
	}

	var out string
	review.NextAll().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if classMatchesAny(s, sitevoice.WidgetAuthorKeywords) {
			out = cleanText(s)
			return false
		}
		if label := findLabel(s, "div,span,p", sitevoice.WidgetAuthorKeywords); label != "" {
			out = label
			return false
		}
		return true
	})
	return out
}

// splitCustomerLabel splits a "Name at Company" or "Name from Company"
// label; when neither separator is present the whole label is the author
// and the company is unknown.
func splitCustomerLabel(label string) (string, string) {
	for _, sep := range []string{" at ", " from "} {
		if i := strings.Index(label, sep); i >= 0 {
			return strings.TrimSpace(label[:i]), strings.TrimSpace(label[i+len(sep):])
		}
	}
	return label, "Unknown"
}
