// Package stats computes per-category aggregates over validated records.
package stats

import (
	"math"
	"math/big"

	"github.com/23f2005290/analyze/pkg/analyze/models"
)

// Aggregate groups records by exact category match and computes the sum,
// mean, and count of each group. Categories without records never appear.
func Aggregate(records []models.Record) models.Result {
	groups := make(map[string][]float64)
	for _, rec := range records {
		groups[rec.Category] = append(groups[rec.Category], rec.Value)
	}

	summary := make(map[string]models.SummaryEntry, len(groups))
	for category, values := range groups {
		sum := Sum(values)
		summary[category] = models.SummaryEntry{
			Sum:   sum,
			Mean:  sum / float64(len(values)),
			Count: len(values),
		}
	}

	return models.Result{
		Summary:            summary,
		TotalRowsProcessed: len(records),
	}
}

// sumPrec holds any sum of float64 values exactly: the finite range spans
// 2^1023 down to 2^-1074, with 64 bits of headroom for carries.
const sumPrec = 1024 + 1074 + 64

// Sum returns the exact sum of values rounded once to float64, so any
// permutation of the same values yields the same bits. The result is
// infinite only when the exact sum lies outside the float64 range.
func Sum(values []float64) float64 {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return naiveSum(values)
		}
	}

	acc := new(big.Float).SetPrec(sumPrec)
	var x big.Float
	for _, v := range values {
		acc.Add(acc, x.SetFloat64(v))
	}
	f, _ := acc.Float64()
	return f
}

// naiveSum handles non-finite input, where the result is Inf or NaN in any order.
func naiveSum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}
