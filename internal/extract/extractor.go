package extract

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/logging"
)

// Extractor turns raw markup into a Document. Construct one per process
// (or per test) with New; it is safe for concurrent use.
type Extractor struct {
	*helpers
	minContentLength int
	maxLinkDensity   float64
	log              *logging.Logger
}

// New creates an extractor from configuration.
func New(cfg config.ExtractConfig, log *logging.Logger) *Extractor {
	return &Extractor{
		helpers:          newHelpers(),
		minContentLength: cfg.MinContentLength,
		maxLinkDensity:   cfg.MaxLinkDensity,
		log:              logging.OrNop(log).Named("extract"),
	}
}

// Extract parses raw markup from sourceURL into a normalized Document.
// Malformed markup degrades to empty fields; only an invalid source URL
// errors.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*Document, error) {
	if _, err := url.ParseRequestURI(sourceURL); err != nil {
		return nil, fmt.Errorf("invalid source url %q: %w", sourceURL, err)
	}

	doc, err := LoadHTML(rawHTML)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	og := extractOpenGraph(doc)
	structured := extractStructuredData(doc)
	published, modified := e.extractDates(doc, og, structured, rawHTML)
	image, logo := extractImages(doc, og, sourceURL)
	title := extractTitle(doc, og)

	result := &Document{
		Title:          title,
		Description:    extractDescription(doc, og),
		OpenGraph:      og,
		Content:        e.extractContent(doc, rawHTML),
		Published:      published,
		Modified:       modified,
		Language:       extractLanguage(doc),
		ImageURL:       image,
		LogoURL:        logo,
		Organization:   extractOrganization(og, structured, sourceURL, title),
		Author:         e.extractAuthor(doc, structured, rawHTML),
		StructuredData: structured,
		SourceURL:      sourceURL,
	}

	e.log.Debug("extracted document",
		zap.String("url", sourceURL),
		zap.Int("content_length", result.ContentLength()),
		zap.Int("structured_blocks", len(structured)),
	)

	return result, nil
}
