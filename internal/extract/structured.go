package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"
)

// extractStructuredData parses every embedded JSON-LD block. Malformed
// blocks are skipped individually; they never fail the extraction.
func extractStructuredData(doc *goquery.Document) []map[string]any {
	var blocks []map[string]any

	doc.Find("script[type='application/ld+json']").Each(func(i int, s *goquery.Selection) {
		content := strings.TrimSpace(s.Text())
		if content == "" {
			return
		}

		var data any
		if err := sonic.UnmarshalString(content, &data); err != nil {
			return
		}

		switch v := data.(type) {
		case map[string]any:
			blocks = append(blocks, flattenGraph(v)...)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					blocks = append(blocks, flattenGraph(m)...)
				}
			}
		}
	})

	return blocks
}

// flattenGraph unwraps @graph containers so callers see one flat block
// list.
func flattenGraph(block map[string]any) []map[string]any {
	graph, ok := block["@graph"].([]any)
	if !ok {
		return []map[string]any{block}
	}

	out := make([]map[string]any, 0, len(graph))
	for _, item := range graph {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return []map[string]any{block}
	}
	return out
}
