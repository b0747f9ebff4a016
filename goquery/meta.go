package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitevoice"
)

// Title returns the page title.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// MetaDescription returns the page's meta description, falling back to
// the OpenGraph description.
func (p *Page) MetaDescription() string {
	if desc := p.doc.Find(`meta[name="description"]`).AttrOr("content", ""); desc != "" {
		return strings.TrimSpace(desc)
	}
	return strings.TrimSpace(p.doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
}

// Stats extracts statistical claims: elements tagged with a stat keyword
// whose cleaned text contains at least one digit.
func (p *Page) Stats() []string {
	var stats []string
	p.doc.Find("div,p,span").Each(func(_ int, s *goquery.Selection) {
		if !classMatchesAny(s, sitevoice.StatClassKeywords) {
			return
		}
		if sitevoice.LooksLikeStyleDebris(outerHTML(s)) {
			return
		}
		text := cleanText(s)
		if text != "" && sitevoice.ContainsDigit(text) {
			stats = append(stats, text)
		}
	})
	return stats
}

// ValueProps extracts value propositions: heading/strong/paragraph
// children of containers tagged with a feature/benefit keyword.
func (p *Page) ValueProps() []string {
	var props []string
	p.doc.Find("div,section,li").Each(func(_ int, s *goquery.Selection) {
		if !classMatchesAny(s, sitevoice.ValuePropClassKeywords) {
			return
		}
		if sitevoice.LooksLikeStyleDebris(outerHTML(s)) {
			return
		}
		s.Find("h2,h3,h4,strong,p").Each(func(_ int, prop *goquery.Selection) {
			if text := cleanText(prop); len(text) > sitevoice.MinValuePropLength {
				props = append(props, text)
			}
		})
	})
	return props
}

// Images extracts image references, excluding base64-embedded sources.
func (p *Page) Images() []sitevoice.Image {
	var images []sitevoice.Image
	p.doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		images = append(images, sitevoice.Image{
			Src: src,
			Alt: s.AttrOr("alt", ""),
		})
	})
	return images
}

// Links extracts hyperlinks with non-empty cleaned text, excluding
// fragment, javascript:, mailto: and tel: targets.
func (p *Page) Links() []sitevoice.Link {
	var links []sitevoice.Link
	p.doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if href == "" || isNonContentLink(href) {
			return
		}
		text := cleanText(s)
		if text == "" {
			return
		}
		links = append(links, sitevoice.Link{Href: href, Text: text})
	})
	return links
}

// isNonContentLink reports whether a href points at a fragment or a
// non-HTTP scheme that carries no crawlable content.
func isNonContentLink(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:")
}
