package schema

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/extract"
	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/logging"
	"github.com/schemascribe/backend/internal/shared/textutil"
)

// AssembleInput bundles the pipeline signals the assembler merges.
type AssembleInput struct {
	Document    *extract.Document
	Entities    []entity.Entity
	ContentType string // howto, review, scholarly, article
	Keywords    []string
	Content     string // raw text used for occurrence counting
}

// Assembler merges extraction, entity, and classification signals into
// one JSON-LD document.
type Assembler struct {
	cfg config.SchemaConfig
	log *logging.Logger
}

// NewAssembler creates an assembler.
func NewAssembler(cfg config.SchemaConfig, log *logging.Logger) *Assembler {
	return &Assembler{cfg: cfg, log: logging.OrNop(log).Named("assemble")}
}

// Assemble builds the typed JSON-LD document. Rules apply in order: base
// type resolution, author/publisher/image attachment, about/mentions
// split, teaches, HowTo steps.
func (a *Assembler) Assemble(in AssembleInput) *Document {
	doc := in.Document
	origin := pageOrigin(doc.SourceURL)

	out := &Document{
		Context:       "https://schema.org",
		Type:          a.resolveType(doc, in.ContentType),
		Headline:      doc.Title,
		Description:   doc.Description,
		URL:           doc.SourceURL,
		DatePublished: doc.Published,
		DateModified:  doc.Modified,
		InLanguage:    doc.Language,
		Keywords:      strings.Join(in.Keywords, ", "),
	}

	if doc.Author != "" {
		out.Author = &PersonRef{
			Type: "Person",
			ID:   fmt.Sprintf("%s/#person-%s", origin, textutil.Slugify(doc.Author)),
			Name: doc.Author,
		}
	}

	if doc.Organization != "" {
		out.Publisher = &Organization{
			Type: "Organization",
			ID:   fmt.Sprintf("%s/#organization-%s", origin, textutil.Slugify(doc.Organization)),
			Name: doc.Organization,
		}
		if doc.LogoURL != "" {
			out.Publisher.Logo = &ImageObject{Type: "ImageObject", URL: doc.LogoURL}
		}
		out.IsPartOf = &WebSite{
			Type: "WebSite",
			ID:   origin + "/#website",
			Name: doc.Organization,
			URL:  origin,
		}
	}

	if doc.ImageURL != "" {
		out.Image = &ImageObject{Type: "ImageObject", URL: doc.ImageURL}
	}

	out.About, out.Mentions = a.splitEntities(in.Entities, in.Content)

	if IsInstructionalContent(doc.Title, in.Content) {
		out.Teaches = ExtractLearningOutcomes(in.Content, a.cfg.MaxOutcomes)
	}

	if IsRealHowToContent(doc.Title, in.Content, a.cfg.MinSequentialIndicators) {
		out.Step = ExtractSteps(in.Content, a.cfg.MaxSteps)
		if len(out.Step) > 0 && !containsString(out.Type, TypeHowTo) {
			out.Type = append(out.Type, TypeHowTo)
		}
	}

	a.log.Debug("schema assembled",
		zap.Strings("type", out.Type),
		zap.Int("about", len(out.About)),
		zap.Int("mentions", len(out.Mentions)),
		zap.Int("steps", len(out.Step)),
	)
	return out
}

// MarshalPruned serializes the document with the recursive empty-pruning
// rule applied.
func MarshalPruned(doc *Document) ([]byte, error) {
	raw, err := sonic.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	var tree map[string]any
	if err := sonic.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("reload schema tree: %w", err)
	}

	pruned := PruneEmpty(tree)
	out, err := sonic.Marshal(pruned)
	if err != nil {
		return nil, fmt.Errorf("marshal pruned schema: %w", err)
	}
	return out, nil
}

// resolveType resolves the base @type. URL path hints take precedence
// over content classification; classification falls through
// howto -> BlogPosting, review -> Review, scholarly -> ScholarlyArticle,
// default -> Article.
func (a *Assembler) resolveType(doc *extract.Document, contentType string) []string {
	if strings.Contains(strings.ToLower(doc.SourceURL), "/blog") {
		return []string{TypeBlogPosting}
	}

	switch contentType {
	case "howto":
		return []string{TypeBlogPosting}
	case "review":
		return []string{TypeReview}
	case "scholarly":
		return []string{TypeScholarlyArticle}
	default:
		return []string{TypeArticle}
	}
}

// splitEntities divides entities into about (primary) and mentions
// (secondary). Primary requires confidence above the primary threshold
// AND more raw-text occurrences than the occurrence floor AND a
// non-person type; everything else above the mention threshold becomes a
// mention, capped.
func (a *Assembler) splitEntities(entities []entity.Entity, content string) (about, mentions []EntityRef) {
	for _, e := range entities {
		occurrences := textutil.CountOccurrences(content, e.Name)
		if occurrences < e.Mentions {
			occurrences = e.Mentions
		}

		ref := EntityRef{
			Type:   SchemaTypeFor(e),
			Name:   e.Name,
			SameAs: ReferenceLinksFor(e.Name),
		}

		switch {
		case e.Confidence > a.cfg.PrimaryConfidence &&
			occurrences > a.cfg.PrimaryOccurrences &&
			e.Type != entity.TypePerson:
			about = append(about, ref)
		case e.Confidence > a.cfg.MentionConfidence:
			if len(mentions) < a.cfg.MaxMentions {
				mentions = append(mentions, ref)
			}
		}
	}
	return about, mentions
}

// pageOrigin returns scheme://host of the source URL, or empty.
func pageOrigin(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
