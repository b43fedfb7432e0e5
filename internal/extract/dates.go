package extract

import (
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// textualDatePatterns find dates written into the page body when no
// structured timestamp exists.
var textualDatePatterns = []string{
	`(?i)published(?:\s+on)?[:\s]+([A-Z][a-z]+ \d{1,2},? \d{4})`,
	`(?i)updated(?:\s+on)?[:\s]+([A-Z][a-z]+ \d{1,2},? \d{4})`,
	`(?i)\b([A-Z][a-z]+ \d{1,2},? \d{4})\b`,
	`\b(\d{4}-\d{2}-\d{2})\b`,
	`\b(\d{1,2}/\d{1,2}/\d{4})\b`,
}

// extractDates resolves published/modified timestamps. Structured data and
// Open Graph article times win; body text patterns are the fallback.
// Unparsable dates are discarded, never defaulted.
func (e *Extractor) extractDates(doc *goquery.Document, og map[string]string, structured []map[string]any, rawHTML string) (published, modified string) {
	for _, block := range structured {
		if published == "" {
			published = normalizeDate(stringField(block, "datePublished"))
		}
		if modified == "" {
			modified = normalizeDate(stringField(block, "dateModified"))
		}
	}

	if published == "" {
		published = normalizeDate(og["og:article:published_time"])
	}
	if published == "" {
		published = normalizeDate(doc.Find("meta[property='article:published_time']").First().AttrOr("content", ""))
	}
	if modified == "" {
		modified = normalizeDate(doc.Find("meta[property='article:modified_time']").First().AttrOr("content", ""))
	}

	if published == "" {
		for _, pattern := range textualDatePatterns {
			re, err := e.cachedRegex(pattern)
			if err != nil {
				continue
			}
			if m := re.FindStringSubmatch(rawHTML); len(m) > 1 {
				if norm := normalizeDate(m[1]); norm != "" {
					published = norm
					break
				}
			}
		}
	}

	return published, modified
}

// normalizeDate parses a textual date and renders it as RFC 3339. Invalid
// input yields an empty string.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
