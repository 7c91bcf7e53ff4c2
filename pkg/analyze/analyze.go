package analyze

import (
	"log/slog"

	"github.com/23f2005290/analyze/pkg/analyze/models"
	"github.com/23f2005290/analyze/pkg/analyze/stats"
)

// Run loads the input at path, filters rows with non-numeric values, and
// aggregates the rest by category.
//
// It fails with a *MissingInputError when the input cannot be opened and a
// *SchemaError when the Category or Value field is absent. Bad rows are
// never an error.
func Run(path string, opts Options) (*models.Result, error) {
	logger := opts.logger().With(slog.String("input", path))

	table, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("input loaded",
		slog.String("format", string(opts.ResolveFormat(path))),
		slog.Any("fields", table.Header),
		slog.Int("rows", len(table.Records)))

	records := Coerce(table, logger)

	result := stats.Aggregate(records)
	result.RowsRead = len(table.Records) + table.Skipped
	result.RowsDropped = result.RowsRead - result.TotalRowsProcessed

	logger.Info("summary computed",
		slog.Int("categories", len(result.Summary)),
		slog.Int("rows_processed", result.TotalRowsProcessed),
		slog.Int("rows_dropped", result.RowsDropped))

	return &result, nil
}
