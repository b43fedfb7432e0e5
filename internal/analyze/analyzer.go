// Package analyze combines entity recognition, topic modeling, and
// classification heuristics into a single content profile.
package analyze

import (
	"sort"

	"go.uber.org/zap"

	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/graph"
	"github.com/schemascribe/backend/internal/logging"
	"github.com/schemascribe/backend/internal/schema"
	"github.com/schemascribe/backend/internal/semantic"
)

const (
	maxKeywords     = 10
	maxMainConcepts = 5
	maxTopics       = 3
)

// Result is the full content profile for one document.
type Result struct {
	Entities         []entity.Entity          `json:"entities"`
	Topics           []semantic.Topic         `json:"topics"`
	Keywords         []string                 `json:"keywords"`
	ContentType      string                   `json:"content_type"`
	Industry         string                   `json:"industry"`
	TargetAudience   string                   `json:"target_audience"`
	LearningOutcomes []string                 `json:"learning_outcomes"`
	MainConcepts     []string                 `json:"main_concepts"`
	Sentiment        semantic.SentimentResult `json:"sentiment"`
}

// Analyzer profiles content. Construct one per configuration; instances
// are safe for reuse across documents.
type Analyzer struct {
	recognizer *entity.Recognizer
	topics     *semantic.TopicModeler
	sentiment  *semantic.SentimentAnalyzer
	graphs     *graph.Builder
	lexicons   []entity.Lexicon
	log        *logging.Logger
}

// NewAnalyzer wires an analyzer from its stage components. A nil
// lexicon slice falls back to the built-in set.
func NewAnalyzer(recognizer *entity.Recognizer, topics *semantic.TopicModeler, sentiment *semantic.SentimentAnalyzer, graphs *graph.Builder, lexicons []entity.Lexicon, log *logging.Logger) *Analyzer {
	if lexicons == nil {
		lexicons = entity.DefaultLexicons()
	}
	return &Analyzer{
		recognizer: recognizer,
		topics:     topics,
		sentiment:  sentiment,
		graphs:     graphs,
		lexicons:   lexicons,
		log:        logging.OrNop(log).Named("analyze"),
	}
}

// Analyze profiles the text. The URL is optional and only informs
// content-type classification.
func (a *Analyzer) Analyze(text, title, url string) *Result {
	industry := a.classifyIndustry(text, title)

	entities := a.recognizer.Recognize(text, title, industry)
	spans := entity.RecognizeSpans(text)
	entities = entity.Merge(entities, entity.SpanEntities(spans))

	contentType := classifyContentType(text, title, url)

	res := &Result{
		Entities:       entities,
		Topics:         a.topics.ExtractTopics([]string{text}, maxTopics),
		Keywords:       ExtractKeywords(text, title, maxKeywords),
		ContentType:    contentType,
		Industry:       industry,
		TargetAudience: classifyAudience(text, title),
		MainConcepts:   a.mainConcepts(entities, text, industry),
		Sentiment:      a.sentiment.Analyze(text),
	}

	if schema.IsInstructionalContent(title, text) {
		res.LearningOutcomes = schema.ExtractLearningOutcomes(text, maxMainConcepts)
	}

	a.log.Debug("content analyzed",
		zap.String("industry", industry),
		zap.String("content_type", contentType),
		zap.Int("entities", len(entities)),
		zap.Int("keywords", len(res.Keywords)),
	)
	return res
}

// mainConcepts ranks entities by graph importance and returns the top
// names. Falls back to confidence order when the graph is too sparse to
// rank.
func (a *Analyzer) mainConcepts(entities []entity.Entity, text, industry string) []string {
	g := a.graphs.Build(entities, text, industry)

	type ranked struct {
		name  string
		score float64
	}
	var nodes []ranked
	for _, n := range g.Nodes {
		nodes = append(nodes, ranked{name: n.Name, score: n.Importance})
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].score != nodes[j].score {
			return nodes[i].score > nodes[j].score
		}
		return nodes[i].name < nodes[j].name
	})

	var out []string
	for _, n := range nodes {
		if len(out) == maxMainConcepts {
			break
		}
		out = append(out, n.name)
	}
	if len(out) > 0 {
		return out
	}

	for _, e := range entities {
		if len(out) == maxMainConcepts {
			break
		}
		out = append(out, e.Name)
	}
	return out
}
