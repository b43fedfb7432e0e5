package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

const (
	// MaxHTMLSize limits HTML input to 10MB to prevent memory exhaustion.
	MaxHTMLSize = 10 * 1024 * 1024
)

// Document is the normalized result of extracting one page.
type Document struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	OpenGraph      map[string]string `json:"openGraph,omitempty"`
	Content        string            `json:"content"`
	Published      string            `json:"published,omitempty"` // RFC 3339
	Modified       string            `json:"modified,omitempty"`  // RFC 3339
	Language       string            `json:"language,omitempty"`
	LogoURL        string            `json:"logoUrl,omitempty"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	Organization   string            `json:"organization,omitempty"`
	Author         string            `json:"author,omitempty"`
	StructuredData []map[string]any  `json:"structuredData,omitempty"`
	SourceURL      string            `json:"sourceUrl"`
}

// ContentLength returns the text-only length of the extracted content.
func (d *Document) ContentLength() int {
	return len(strings.TrimSpace(d.Content))
}

// Thin reports whether the document carries too little content to analyze.
func (d *Document) Thin(threshold int) bool {
	return d.ContentLength() < threshold
}

// ValidateHTML checks HTML size bounds.
func ValidateHTML(htmlStr string) error {
	if len(htmlStr) == 0 {
		return fmt.Errorf("html content required")
	}
	if len(htmlStr) > MaxHTMLSize {
		return fmt.Errorf("html exceeds maximum size of %d bytes", MaxHTMLSize)
	}
	return nil
}

// DetectCharset detects the charset of raw HTML bytes, defaulting to utf-8.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadHTML parses HTML with automatic charset detection.
func LoadHTML(htmlStr string) (*goquery.Document, error) {
	if err := ValidateHTML(htmlStr); err != nil {
		return nil, err
	}

	data := []byte(htmlStr)
	detectedCharset := DetectCharset(data)

	reader := bytes.NewReader(data)
	utf8Reader, err := charset.NewReader(reader, detectedCharset)
	if err != nil {
		// Fallback to direct parsing
		return goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	}

	return goquery.NewDocumentFromReader(utf8Reader)
}

// LoadHTMLNode parses HTML into an xpath-compatible node tree.
func LoadHTMLNode(htmlStr string) (*html.Node, error) {
	if err := ValidateHTML(htmlStr); err != nil {
		return nil, err
	}

	data := []byte(htmlStr)
	detectedCharset := DetectCharset(data)

	reader := bytes.NewReader(data)
	utf8Reader, err := charset.NewReader(reader, detectedCharset)
	if err != nil {
		return htmlquery.Parse(strings.NewReader(htmlStr))
	}

	return htmlquery.Parse(utf8Reader)
}

// helpers shared by the extraction passes.
type helpers struct {
	regexCache sync.Map
	stripper   *bluemonday.Policy
}

func newHelpers() *helpers {
	return &helpers{
		stripper: bluemonday.StrictPolicy(),
	}
}

// StripTags removes all markup, leaving text only.
func (h *helpers) StripTags(htmlStr string) string {
	return h.stripper.Sanitize(htmlStr)
}

// cachedRegex returns a compiled regex, caching compilations.
func (h *helpers) cachedRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := h.regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	h.regexCache.Store(pattern, re)
	return re, nil
}
