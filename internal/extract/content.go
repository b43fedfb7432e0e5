package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"

	"github.com/schemascribe/backend/internal/shared/textutil"
)

// semanticSelectors are HTML5 containers tried first.
var semanticSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"[role='article']",
}

// platformSelectors cover e-commerce, blog-engine, and CMS conventions,
// in priority order.
var platformSelectors = []string{
	".post-content", ".entry-content", ".article-content", ".article-body",
	".blog-post", ".post-body", ".story-body",
	"#content", "#main-content", ".content", ".main-content",
	".product-description", ".product-details", "#product-info",
	".page-content", ".rich-text", ".cms-content",
}

// platformXPaths are tried after CSS selectors; they catch attribute
// shapes goquery's selector set misses (substring class matches).
var platformXPaths = []string{
	"//div[contains(@class,'post') and contains(@class,'content')]",
	"//div[contains(@class,'article')]",
	"//div[contains(@id,'content')]",
}

// noiseSelector matches regions stripped before any content scoring.
const noiseSelector = "script, style, nav, header, footer, aside, iframe, form, .ad, .ads, .advertisement, .sidebar, .menu, .nav, .navigation, .comments, .related"

// extractContent runs the main-content cascade and returns the best text.
func (e *Extractor) extractContent(doc *goquery.Document, rawHTML string) string {
	clean := doc.Clone()
	clean.Find(noiseSelector).Remove()

	// Semantic containers first.
	for _, sel := range semanticSelectors {
		if text := e.scoreRegion(clean.Find(sel).First()); text != "" {
			return text
		}
	}

	// Platform-specific class/id conventions.
	for _, sel := range platformSelectors {
		if text := e.scoreRegion(clean.Find(sel).First()); text != "" {
			return text
		}
	}

	// XPath pass for substring attribute matches.
	if text := e.xpathContent(rawHTML); text != "" {
		return text
	}

	// Most paragraph-dense div.
	if text := e.densestDiv(clean); text != "" {
		return text
	}

	// Body with noise already stripped.
	if body := clean.Find("body"); body.Length() > 0 {
		if text := normalizeText(body.Text()); len(text) > 0 {
			return text
		}
	}

	// Whole document as last resort.
	return normalizeText(clean.Text())
}

// scoreRegion accepts a region when its tag-stripped text length clears
// the configured minimum and its link density does not mark it as
// navigation.
func (e *Extractor) scoreRegion(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}

	text := normalizeText(sel.Text())
	length := len(text)
	if raw, err := sel.Html(); err == nil {
		length = len(normalizeText(e.StripTags(raw)))
	}
	if length < e.minContentLength {
		return ""
	}

	words := len(strings.Fields(text))
	links := sel.Find("a").Length()
	if words > 0 && float64(links)/float64(words) > e.maxLinkDensity {
		return ""
	}

	return text
}

// densestDiv picks the div with the most paragraph text, subject to the
// same length and link-density gates.
func (e *Extractor) densestDiv(root *goquery.Selection) string {
	var best *goquery.Selection
	bestLen := 0

	root.Find("div").Each(func(i int, div *goquery.Selection) {
		pLen := 0
		div.ChildrenFiltered("p").Each(func(j int, p *goquery.Selection) {
			pLen += len(normalizeText(p.Text()))
		})
		if pLen > bestLen {
			bestLen = pLen
			best = div
		}
	})

	if best == nil || bestLen < e.minContentLength {
		return ""
	}
	return e.scoreRegion(best)
}

// xpathContent evaluates the platform xpath table against a fresh node
// tree. Parse failures fall through to the next cascade stage.
func (e *Extractor) xpathContent(rawHTML string) string {
	node, err := LoadHTMLNode(rawHTML)
	if err != nil {
		return ""
	}

	for _, xp := range platformXPaths {
		found, err := htmlquery.Query(node, xp)
		if err != nil || found == nil {
			continue
		}
		stripped := normalizeText(e.StripTags(htmlquery.OutputHTML(found, false)))
		if len(stripped) >= e.minContentLength {
			return normalizeText(htmlquery.InnerText(found))
		}
	}
	return ""
}

func normalizeText(s string) string {
	return textutil.NormalizeWhitespace(s)
}
