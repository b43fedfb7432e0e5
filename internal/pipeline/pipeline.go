// Package pipeline chains extraction, analysis, graph construction,
// recommendation, and schema assembly into one entry point.
package pipeline

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/schemascribe/backend/internal/analyze"
	"github.com/schemascribe/backend/internal/embedding"
	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/extract"
	"github.com/schemascribe/backend/internal/graph"
	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/logging"
	"github.com/schemascribe/backend/internal/schema"
	"github.com/schemascribe/backend/internal/semantic"
	"github.com/schemascribe/backend/internal/shared/id"
)

// ErrInsufficientContent signals that extraction produced too little
// text to analyze. Callers should fall back to manual input rather than
// synthesizing markup from near-empty text.
var ErrInsufficientContent = errors.New("insufficient content")

// InsufficientContentError wraps ErrInsufficientContent with the
// measured length so callers can report it.
type InsufficientContentError struct {
	Length  int
	Minimum int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("insufficient content: %d characters extracted, %d required", e.Length, e.Minimum)
}

func (e *InsufficientContentError) Unwrap() error { return ErrInsufficientContent }

// Result is everything one pipeline run produces.
type Result struct {
	RunID           id.RunID                `json:"run_id"`
	Document        *extract.Document       `json:"document"`
	Analysis        *analyze.Result         `json:"analysis"`
	Graph           *graph.Graph            `json:"graph"`
	Recommendations []schema.Recommendation `json:"recommendations"`
	Schema          *schema.Document        `json:"schema"`
	SchemaJSON      []byte                  `json:"-"`
}

// Pipeline holds one instance of every stage. Build once, reuse across
// documents; stages hold no per-document state.
type Pipeline struct {
	cfg       *config.Config
	extractor *extract.Extractor
	analyzer  *analyze.Analyzer
	graphs    *graph.Builder
	recommend *schema.Recommender
	assemble  *schema.Assembler
	store     *embedding.Store
	log       *logging.Logger
}

// Option adjusts pipeline construction.
type Option func(*options)

type options struct {
	lexicons []entity.Lexicon
	topicSrc rand.Source
}

// WithLexicons replaces the built-in industry lexicons.
func WithLexicons(lexicons []entity.Lexicon) Option {
	return func(o *options) { o.lexicons = lexicons }
}

// WithTopicSource fixes the random source used for topic
// initialization, making runs reproducible.
func WithTopicSource(src rand.Source) Option {
	return func(o *options) { o.topicSrc = src }
}

// New builds a pipeline from configuration. A nil logger disables
// logging.
func New(cfg *config.Config, log *logging.Logger, opts ...Option) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	log = logging.OrNop(log)

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	graphs := graph.NewBuilder(cfg.Graph, nil, log)
	analyzer := analyze.NewAnalyzer(
		entity.NewRecognizer(cfg.Entity, o.lexicons, log),
		semantic.NewTopicModeler(cfg.Semantic, o.topicSrc),
		semantic.NewSentimentAnalyzer(cfg.Semantic),
		graphs,
		o.lexicons,
		log,
	)

	return &Pipeline{
		cfg:       cfg,
		extractor: extract.New(cfg.Extract, log),
		analyzer:  analyzer,
		graphs:    graphs,
		recommend: schema.NewRecommender(cfg.Schema, log),
		assemble:  schema.NewAssembler(cfg.Schema, log),
		store:     embedding.NewStoreWithIterations(embedding.NewEmbedder(), cfg.Embedding.KMeansIterations),
		log:       log.Named("pipeline"),
	}
}

// Store exposes the embeddings cache for similarity queries and
// export/import.
func (p *Pipeline) Store() *embedding.Store { return p.store }

// Run executes the full chain over raw markup. Returns an
// InsufficientContentError when extraction yields too little text.
func (p *Pipeline) Run(rawHTML, sourceURL string) (*Result, error) {
	doc, err := p.extractor.Extract(rawHTML, sourceURL)
	if err != nil {
		return nil, err
	}

	if doc.Thin(p.cfg.Extract.ThinContentLength) {
		return nil, &InsufficientContentError{
			Length:  doc.ContentLength(),
			Minimum: p.cfg.Extract.ThinContentLength,
		}
	}

	analysis := p.analyzer.Analyze(doc.Content, doc.Title, sourceURL)
	g := p.graphs.Build(analysis.Entities, doc.Content, analysis.Industry)
	recommendations := p.recommend.Recommend(doc.Content, doc.Title, sourceURL, analysis.Entities)

	assembled := p.assemble.Assemble(schema.AssembleInput{
		Document:    doc,
		Entities:    analysis.Entities,
		ContentType: analysis.ContentType,
		Keywords:    analysis.Keywords,
		Content:     doc.Content,
	})

	encoded, err := schema.MarshalPruned(assembled)
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	p.store.Insert(doc.Content, analysis.ContentType)

	runID := id.NewRunID()
	p.log.Info("pipeline run complete",
		zap.String("run_id", string(runID)),
		zap.String("url", sourceURL),
		zap.Int("entities", len(analysis.Entities)),
		zap.Int("graph_nodes", len(g.Nodes)),
		zap.Int("recommendations", len(recommendations)),
	)

	return &Result{
		RunID:           runID,
		Document:        doc,
		Analysis:        analysis,
		Graph:           g,
		Recommendations: recommendations,
		Schema:          assembled,
		SchemaJSON:      encoded,
	}, nil
}
