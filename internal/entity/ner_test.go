package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSpan(spans []Span, name string) *Span {
	for i := range spans {
		if spans[i].Name == name {
			return &spans[i]
		}
	}
	return nil
}

// TestRecognizeSpansPersonVerb verifies the person-verb pattern tags the
// name alone, with the verb excluded from the span.
func TestRecognizeSpansPersonVerb(t *testing.T) {
	text := "Jane Doe said the plan doubles training volume."

	spans := RecognizeSpans(text)
	span := findSpan(spans, "Jane Doe")
	require.NotNil(t, span)
	assert.Equal(t, TypePerson, span.Type)
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, len("Jane Doe"), span.End)
	assert.Equal(t, "Jane Doe", text[span.Start:span.End])
}

func TestRecognizeSpansTitledPerson(t *testing.T) {
	spans := RecognizeSpans("Dr. Maria Santos reviewed the protocol.")
	span := findSpan(spans, "Dr. Maria Santos")
	require.NotNil(t, span)
	assert.Equal(t, TypePerson, span.Type)
}

func TestRecognizeSpansOrganization(t *testing.T) {
	spans := RecognizeSpans("The device is built by Quantum Widgets Inc. in Ohio.")
	span := findSpan(spans, "Quantum Widgets Inc")
	require.NotNil(t, span)
	assert.Equal(t, TypeOrganization, span.Type)
}

func TestRecognizeSpansDates(t *testing.T) {
	spans := RecognizeSpans("Published March 15, 2024 and revised 2024-06-01.")

	require.NotNil(t, findSpan(spans, "March 15, 2024"))
	require.NotNil(t, findSpan(spans, "2024-06-01"))
	for _, s := range spans {
		if s.Type == TypeDate {
			assert.InDelta(t, 0.95, s.Confidence, 1e-9)
		}
	}
}

// TestRecognizeSpansOverlap verifies the higher-confidence span wins
// when two patterns cover the same region.
func TestRecognizeSpansOverlap(t *testing.T) {
	spans := RecognizeSpans("Dr. Alan Brooks wrote the original review.")

	assert.Nil(t, findSpan(spans, "Alan Brooks"))
	span := findSpan(spans, "Dr. Alan Brooks")
	require.NotNil(t, span)
	assert.Equal(t, TypePerson, span.Type)
	assert.InDelta(t, 0.9, span.Confidence, 1e-9)
}

func TestRecognizeSpansEmptyText(t *testing.T) {
	assert.Empty(t, RecognizeSpans(""))
}
