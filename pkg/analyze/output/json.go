// Package output renders pipeline results for downstream consumers.
package output

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/23f2005290/analyze/pkg/analyze/models"
)

// Document is the JSON shape of a Result.
type Document struct {
	// SummaryStats maps category to its statistics; never null.
	SummaryStats map[string]Entry `json:"summary_stats"`
	// TotalRowsProcessed is the number of rows that entered aggregation.
	TotalRowsProcessed int `json:"total_rows_processed"`
}

// Entry is the JSON shape of a SummaryEntry.
// Nil numbers encode as null.
type Entry struct {
	Sum   *float64 `json:"sum"`
	Mean  *float64 `json:"mean"`
	Count int      `json:"count"`
}

// NewDocument converts a Result into its serializable form.
// Non-finite numbers, which encoding/json rejects, become nil.
func NewDocument(result models.Result) Document {
	stats := make(map[string]Entry, len(result.Summary))
	for category, entry := range result.Summary {
		stats[category] = Entry{
			Sum:   finite(entry.Sum),
			Mean:  finite(entry.Mean),
			Count: entry.Count,
		}
	}
	return Document{
		SummaryStats:       stats,
		TotalRowsProcessed: result.TotalRowsProcessed,
	}
}

// ToJSON serializes a Result. Category keys are emitted in sorted order,
// so identical results always produce identical bytes.
func ToJSON(result models.Result, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(NewDocument(result)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
