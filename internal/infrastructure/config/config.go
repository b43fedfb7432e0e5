// Package config holds pipeline configuration loaded from the environment.
//
// Every heuristic threshold in the pipeline lives here rather than as a
// hard constant, so tuning does not require code changes.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all pipeline configuration.
type Config struct {
	Extract   ExtractConfig
	Entity    EntityConfig
	Graph     GraphConfig
	Semantic  SemanticConfig
	Embedding EmbeddingConfig
	Schema    SchemaConfig
	Logging   LogConfig
}

// ExtractConfig tunes content extraction.
type ExtractConfig struct {
	// MinContentLength is the text-only length a candidate region must
	// reach before it is accepted as main content.
	MinContentLength int `envconfig:"EXTRACT_MIN_CONTENT_LENGTH" default:"500"`
	// ThinContentLength is the floor below which extracted content is
	// reported as insufficient.
	ThinContentLength int `envconfig:"EXTRACT_THIN_CONTENT_LENGTH" default:"100"`
	// MaxLinkDensity is links-per-word above which a region is treated
	// as navigation. 0.1 means one link per ten words.
	MaxLinkDensity float64 `envconfig:"EXTRACT_MAX_LINK_DENSITY" default:"0.1"`
}

// EntityConfig tunes entity recognition.
type EntityConfig struct {
	MaxEntities    int     `envconfig:"ENTITY_MAX" default:"25"`
	BaseConfidence float64 `envconfig:"ENTITY_BASE_CONFIDENCE" default:"0.6"`
}

// GraphConfig tunes knowledge-graph construction.
type GraphConfig struct {
	Damping             float64 `envconfig:"GRAPH_DAMPING" default:"0.85"`
	RankIterations      int     `envconfig:"GRAPH_RANK_ITERATIONS" default:"50"`
	CooccurrenceFloor   float64 `envconfig:"GRAPH_COOCCURRENCE_FLOOR" default:"0.4"`
	CooccurrenceStep    float64 `envconfig:"GRAPH_COOCCURRENCE_STEP" default:"0.1"`
	HierarchyConfidence float64 `envconfig:"GRAPH_HIERARCHY_CONFIDENCE" default:"0.6"`
	OntologyWeight      float64 `envconfig:"GRAPH_ONTOLOGY_WEIGHT" default:"0.8"`
}

// SemanticConfig tunes sentiment and topic modeling.
type SemanticConfig struct {
	TopicIterations int     `envconfig:"SEMANTIC_TOPIC_ITERATIONS" default:"20"`
	VocabularyCap   int     `envconfig:"SEMANTIC_VOCABULARY_CAP" default:"1000"`
	MinDocFrequency float64 `envconfig:"SEMANTIC_MIN_DOC_FREQ" default:"0.1"`
	MaxDocFrequency float64 `envconfig:"SEMANTIC_MAX_DOC_FREQ" default:"0.9"`
	PositiveFloor   float64 `envconfig:"SEMANTIC_POSITIVE_FLOOR" default:"0.2"`
	NegativeCeiling float64 `envconfig:"SEMANTIC_NEGATIVE_CEILING" default:"-0.2"`
}

// EmbeddingConfig tunes vector embedding and clustering.
type EmbeddingConfig struct {
	KMeansIterations int `envconfig:"EMBEDDING_KMEANS_ITERATIONS" default:"50"`
}

// SchemaConfig tunes recommendation and assembly.
type SchemaConfig struct {
	RecommendationFloor float64 `envconfig:"SCHEMA_RECOMMENDATION_FLOOR" default:"0.3"`
	DefaultConfidence   float64 `envconfig:"SCHEMA_DEFAULT_CONFIDENCE" default:"0.5"`
	MaxRecommendations  int     `envconfig:"SCHEMA_MAX_RECOMMENDATIONS" default:"3"`
	PrimaryConfidence   float64 `envconfig:"SCHEMA_PRIMARY_CONFIDENCE" default:"0.85"`
	PrimaryOccurrences  int     `envconfig:"SCHEMA_PRIMARY_OCCURRENCES" default:"3"`
	MentionConfidence   float64 `envconfig:"SCHEMA_MENTION_CONFIDENCE" default:"0.7"`
	MaxMentions         int     `envconfig:"SCHEMA_MAX_MENTIONS" default:"10"`
	MaxOutcomes         int     `envconfig:"SCHEMA_MAX_OUTCOMES" default:"5"`
	MaxSteps            int     `envconfig:"SCHEMA_MAX_STEPS" default:"15"`
	// MinSequentialIndicators is how many distinct sequential-language
	// signals must be present before HowTo steps are emitted.
	MinSequentialIndicators int `envconfig:"SCHEMA_MIN_SEQUENTIAL_INDICATORS" default:"2"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			MinContentLength:  500,
			ThinContentLength: 100,
			MaxLinkDensity:    0.1,
		},
		Entity: EntityConfig{
			MaxEntities:    25,
			BaseConfidence: 0.6,
		},
		Graph: GraphConfig{
			Damping:             0.85,
			RankIterations:      50,
			CooccurrenceFloor:   0.4,
			CooccurrenceStep:    0.1,
			HierarchyConfidence: 0.6,
			OntologyWeight:      0.8,
		},
		Semantic: SemanticConfig{
			TopicIterations: 20,
			VocabularyCap:   1000,
			MinDocFrequency: 0.1,
			MaxDocFrequency: 0.9,
			PositiveFloor:   0.2,
			NegativeCeiling: -0.2,
		},
		Embedding: EmbeddingConfig{
			KMeansIterations: 50,
		},
		Schema: SchemaConfig{
			RecommendationFloor:     0.3,
			DefaultConfidence:       0.5,
			MaxRecommendations:      3,
			PrimaryConfidence:       0.85,
			PrimaryOccurrences:      3,
			MentionConfidence:       0.7,
			MaxMentions:             10,
			MaxOutcomes:             5,
			MaxSteps:                15,
			MinSequentialIndicators: 2,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
