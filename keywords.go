package sitevoice

import "regexp"

// SectionKeywords maps each section kind to the id/class/heading keyword
// synonyms that identify it on a page.
var SectionKeywords = map[SectionKind][]string{
	SectionAbout:        {"about", "company", "mission", "team", "story"},
	SectionProducts:     {"products", "solutions", "features", "platform", "tools"},
	SectionPricing:      {"pricing", "plans", "packages", "subscription"},
	SectionTestimonials: {"testimonials", "reviews", "customers", "success stories"},
	SectionContact:      {"contact", "support", "help"},
}

// StoryPaths are the conventional relative paths probed for customer-story
// content, in order.
var StoryPaths = []string{
	"/customers",
	"/case-studies",
	"/customer-stories",
	"/success-stories",
	"/testimonials",
}

// StoryPathKeywords identify customer-story URLs discovered from sitemaps.
var StoryPathKeywords = []string{
	"customer",
	"case-stud",
	"success-stor",
	"testimonial",
}

// TestimonialClassKeywords are class/id patterns marking testimonial
// containers.
var TestimonialClassKeywords = []string{
	"testimonial",
	"review",
	"quote",
	"customer-story",
	"success-story",
	"case-study",
	"customer-quote",
}

// StoryClassKeywords mark testimonial containers on case-study pages.
var StoryClassKeywords = []string{"testimonial", "review", "quote", "case-study"}

// AuthorClassKeywords mark elements carrying an author or customer name.
var AuthorClassKeywords = []string{"author", "name", "customer"}

// CompanyClassKeywords mark elements carrying a company or organization name.
var CompanyClassKeywords = []string{"company", "organization", "firm"}

// StatClassKeywords mark elements carrying statistical claims.
var StatClassKeywords = []string{"stat", "metric", "number", "figure"}

// ValuePropClassKeywords mark containers of value propositions.
var ValuePropClassKeywords = []string{"feature", "benefit", "value", "advantage"}

// TestimonialIndicators are phrases whose presence in an embed's subtree
// marks it as a testimonial source.
var TestimonialIndicators = []string{
	"testimonial",
	"review",
	"customer story",
	"success story",
	"case study",
	"customer testimonial",
	"client story",
}

// WidgetProviders identify third-party review-widget iframes by provider
// name or generic review wording.
var WidgetProviders = []string{
	"trustpilot",
	"g2crowd",
	"capterra",
	"reviews",
	"testimonials",
	"feedback",
}

// EmbedCustomerKeywords mark elements near an embed that carry customer
// attribution.
var EmbedCustomerKeywords = []string{"customer", "company", "client"}

// WidgetReviewKeywords mark sibling containers holding review-widget text.
var WidgetReviewKeywords = []string{"review", "testimonial", "feedback"}

// WidgetAuthorKeywords mark attribution elements near widget review text.
var WidgetAuthorKeywords = []string{"author", "reviewer", "customer"}

// VideoPlatform pairs a platform identifier with the URL pattern that
// recognizes its embeds.
type VideoPlatform struct {
	Name    string
	Pattern *regexp.Regexp
}

// VideoPlatforms lists the known video-hosting platforms, checked in order.
var VideoPlatforms = []VideoPlatform{
	{Name: "youtube", Pattern: regexp.MustCompile(`(?i)youtube\.com|youtu\.be`)},
	{Name: "vimeo", Pattern: regexp.MustCompile(`(?i)vimeo\.com`)},
	{Name: "wistia", Pattern: regexp.MustCompile(`(?i)wistia\.com`)},
	{Name: "vidyard", Pattern: regexp.MustCompile(`(?i)vidyard\.com`)},
	{Name: "brightcove", Pattern: regexp.MustCompile(`(?i)brightcove\.net`)},
}

// MatchVideoPlatform returns the platform name recognizing the URL, or ""
// if the URL matches no known platform.
func MatchVideoPlatform(url string) string {
	if url == "" {
		return ""
	}
	for _, p := range VideoPlatforms {
		if p.Pattern.MatchString(url) {
			return p.Name
		}
	}
	return ""
}

// PositionWords are title/position indicators used to split combined
// "Name Title Company" attribution strings.
var PositionWords = []string{"Director", "Manager", "VP", "CEO", "President", "Head"}

// CompanyStopWords are title/department words stripped out of resolved
// company strings. Known precision tradeoff: legitimate company names
// containing these words (e.g. "Sales") lose them too.
var CompanyStopWords = []string{
	"Director", "Manager", "VP", "CEO", "President", "Head",
	"of", "Marketing", "Sales",
}
