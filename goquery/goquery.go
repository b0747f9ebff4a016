// Package goquery implements static content extraction over parsed HTML
// using PuerkitoBio/goquery. It covers section extraction, page metadata,
// static and case-study testimonial candidates, and embedded video/widget
// testimonial reconstruction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitevoice"
)

// Page is an immutable, parsed view of one fetched HTML document.
// All extraction methods are read-only and safe to call in any order.
type Page struct {
	doc *goquery.Document
}

// Parse loads raw markup into a Page.
func Parse(rawMarkup string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawMarkup))
	if err != nil {
		return nil, sitevoice.Errorf(sitevoice.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc}, nil
}

// cleanText extracts the text of a selection with script/style/noscript/
// iframe/head subtrees stripped first, then applies the string-level
// cleaning rules.
func cleanText(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	c := s.Clone()
	c.Find("script,style,noscript,iframe,head").Remove()
	return sitevoice.CleanText(c.Text())
}

// outerHTML serializes a selection; used for the bracket-density debris
// check, which must see the raw fragment including attributes and inline
// styles.
func outerHTML(s *goquery.Selection) string {
	html, err := goquery.OuterHtml(s)
	if err != nil {
		return ""
	}
	return html
}

// attrKeywordMatch reports whether the element's id or class attribute
// contains the keyword, case-insensitively.
func attrKeywordMatch(s *goquery.Selection, keyword string) bool {
	if strings.Contains(strings.ToLower(s.AttrOr("id", "")), keyword) {
		return true
	}
	return strings.Contains(strings.ToLower(s.AttrOr("class", "")), keyword)
}

// classMatchesAny reports whether the element's class attribute contains
// any of the keywords, case-insensitively.
func classMatchesAny(s *goquery.Selection, keywords []string) bool {
	class := strings.ToLower(s.AttrOr("class", ""))
	if class == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(class, kw) {
			return true
		}
	}
	return false
}

// containsAny reports whether text contains any of the given keywords.
// Callers are expected to lower-case text beforehand.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// findLabel returns the cleaned text of the first element under scope that
// matches the tag selector and carries one of the class keywords.
func findLabel(scope *goquery.Selection, selector string, keywords []string) string {
	var out string
	scope.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !classMatchesAny(s, keywords) {
			return true
		}
		out = cleanText(s)
		return false
	})
	return out
}
