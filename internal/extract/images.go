package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// featuredImageSelectors locate a hero image when Open Graph is silent.
var featuredImageSelectors = []string{
	"img.featured", "img.featured-image", ".featured-image img",
	".post-thumbnail img", ".hero img", "article img",
	"img[alt*='featured']",
}

// logoSelectors locate a site logo.
var logoSelectors = []string{
	"img.logo", "img#logo", ".logo img", "#logo img",
	"header img[alt*='logo']", "img[alt*='logo']", "img[src*='logo']",
}

// extractImages resolves the featured image and logo URLs, rewriting
// protocol-relative and root-relative URLs against the source origin.
func extractImages(doc *goquery.Document, og map[string]string, sourceURL string) (image, logo string) {
	if u := og["og:image"]; u != "" {
		image = absoluteURL(u, sourceURL)
	}

	if image == "" {
		for _, sel := range featuredImageSelectors {
			if src := doc.Find(sel).First().AttrOr("src", ""); src != "" {
				image = absoluteURL(src, sourceURL)
				break
			}
		}
	}

	for _, sel := range logoSelectors {
		if src := doc.Find(sel).First().AttrOr("src", ""); src != "" {
			logo = absoluteURL(src, sourceURL)
			break
		}
	}

	return image, logo
}

// absoluteURL rewrites protocol-relative and root-relative references
// against the source URL's origin. Unresolvable references pass through.
func absoluteURL(ref, sourceURL string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	base, err := url.Parse(sourceURL)
	if err != nil || base.Scheme == "" {
		return ref
	}

	if strings.HasPrefix(ref, "//") {
		return base.Scheme + ":" + ref
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
