// Package id provides ID generation for pipeline artifacts.
//
// Embedding records and analysis runs get prefixed ULIDs (emb_*, run_*):
// lexicographically sortable, unique, and readable in logs. Graph node IDs
// are intentionally NOT ULIDs; they are deterministic slugs of entity
// names so that rebuilding a graph from the same entities yields the same
// node identities.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// EmbeddingID identifies a stored vector embedding.
type EmbeddingID string

// RunID identifies a single pipeline invocation, used for log correlation.
type RunID string

const (
	EmbeddingPrefix = "emb"
	RunPrefix       = "run"
)

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand entropy.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source,
// useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string.
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewEmbeddingID generates a new embedding record ID.
func NewEmbeddingID() EmbeddingID {
	return EmbeddingID(Default().GenerateWithPrefix(EmbeddingPrefix))
}

// NewRunID generates a new pipeline run ID.
func NewRunID() RunID {
	return RunID(Default().GenerateWithPrefix(RunPrefix))
}

func (id EmbeddingID) String() string { return string(id) }
func (id RunID) String() string       { return string(id) }

// IsValid checks whether id is a bare ULID string.
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}
