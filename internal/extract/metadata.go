package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/schemascribe/backend/internal/shared/textutil"
)

// extractTitle prefers the <title> element, falling back to Open Graph.
func extractTitle(doc *goquery.Document, og map[string]string) string {
	if title := normalizeText(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return og["og:title"]
}

// extractDescription prefers meta description, falling back to Open Graph.
func extractDescription(doc *goquery.Document, og map[string]string) string {
	if desc := doc.Find("meta[name='description']").First().AttrOr("content", ""); desc != "" {
		return normalizeText(desc)
	}
	return og["og:description"]
}

// extractOpenGraph collects all og:* meta properties.
func extractOpenGraph(doc *goquery.Document) map[string]string {
	og := make(map[string]string)
	doc.Find("meta[property^='og:']").Each(func(i int, s *goquery.Selection) {
		property := s.AttrOr("property", "")
		content := s.AttrOr("content", "")
		if property != "" && content != "" {
			og[property] = content
		}
	})
	return og
}

// extractLanguage reads the html lang attribute.
func extractLanguage(doc *goquery.Document) string {
	return doc.Find("html").First().AttrOr("lang", "")
}

// domainPrefixes are stripped before turning a hostname into a brand name.
var domainPrefixes = []string{"try", "get", "buy", "shop", "my", "the"}

// extractOrganization resolves the publishing organization:
// Open Graph site name, then a publisher/organization inside embedded
// structured data, then a domain-name heuristic, then a title suffix.
func extractOrganization(og map[string]string, structured []map[string]any, sourceURL, title string) string {
	if name := og["og:site_name"]; name != "" {
		return name
	}

	if name := structuredOrganization(structured); name != "" {
		return name
	}

	if name := organizationFromDomain(sourceURL); name != "" {
		return name
	}

	// "Some Article | Brand" title suffix.
	for _, sep := range []string{" | ", " - ", " — "} {
		if idx := strings.LastIndex(title, sep); idx > 0 {
			suffix := strings.TrimSpace(title[idx+len(sep):])
			if suffix != "" && len(strings.Fields(suffix)) <= 4 {
				return suffix
			}
		}
	}

	return ""
}

// structuredOrganization digs a publisher or organization name out of
// embedded JSON-LD blocks.
func structuredOrganization(blocks []map[string]any) string {
	for _, block := range blocks {
		if pub, ok := block["publisher"].(map[string]any); ok {
			if name, ok := pub["name"].(string); ok && name != "" {
				return name
			}
		}
		if t, ok := block["@type"].(string); ok && t == "Organization" {
			if name, ok := block["name"].(string); ok && name != "" {
				return name
			}
		}
	}
	return ""
}

// organizationFromDomain derives a brand name from the hostname:
// strip marketing prefixes, hyphens to spaces, title case.
func organizationFromDomain(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	parts := strings.Split(host, ".")
	if len(parts) == 0 {
		return ""
	}
	name := parts[0]

	for _, prefix := range domainPrefixes {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix)+2 {
			name = name[len(prefix):]
			break
		}
	}

	name = strings.ReplaceAll(name, "-", " ")
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// authorPatterns are tried in order against the raw HTML.
var authorPatterns = []string{
	`(?i)written\s+by\s+([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){0,3})`,
	`(?i)by\s+([A-Z][a-zA-Z.'-]+(?:\s+[A-Z][a-zA-Z.'-]+){1,3})\s*<`,
	`class="author[^"]*"[^>]*>\s*([^<]{2,60})<`,
	`itemprop="author"[^>]*>\s*([^<]{2,60})<`,
	`rel="author"[^>]*>\s*([^<]{2,60})<`,
}

// forbiddenAuthorSubstrings disqualify extracted author candidates.
var forbiddenAuthorSubstrings = []string{"posted", "category", "tag", "admin"}

// extractAuthor resolves the author name: structured data, then the author
// meta tag, then the ordered regex table with a shape validator.
func (e *Extractor) extractAuthor(doc *goquery.Document, structured []map[string]any, rawHTML string) string {
	for _, block := range structured {
		switch author := block["author"].(type) {
		case map[string]any:
			if name, ok := author["name"].(string); ok && validAuthor(name) {
				return normalizeText(name)
			}
		case string:
			if validAuthor(author) {
				return normalizeText(author)
			}
		}
	}

	if meta := doc.Find("meta[name='author']").First().AttrOr("content", ""); validAuthor(meta) {
		return normalizeText(meta)
	}

	for _, pattern := range authorPatterns {
		re, err := e.cachedRegex(pattern)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(rawHTML); len(m) > 1 {
			candidate := normalizeText(m[1])
			if validAuthor(candidate) {
				return candidate
			}
		}
	}

	return ""
}

// validAuthor rejects names containing forbidden substrings and requires
// Title-Case word shape.
func validAuthor(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 60 {
		return false
	}
	lower := strings.ToLower(name)
	for _, bad := range forbiddenAuthorSubstrings {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return textutil.TitleCaseShape(name)
}
