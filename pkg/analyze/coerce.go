package analyze

import (
	"log/slog"

	"github.com/23f2005290/analyze/pkg/analyze/models"
	"github.com/23f2005290/analyze/pkg/analyze/parser"
)

// Coerce converts raw records into validated records, preserving row order.
// Rows whose Value is not a finite decimal number, or that are too short to
// carry a Category, are dropped without error.
//
// A dropped row with a multi-line cell usually means an unbalanced quote
// absorbed the rows after it, so that case is logged as a warning.
func Coerce(table *models.Table, logger *slog.Logger) []models.Record {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	records := make([]models.Record, 0, len(table.Records))
	for _, raw := range table.Records {
		category, ok := table.Lookup(raw, models.FieldCategory)
		if !ok {
			warnMultiline(logger, raw)
			logger.Debug("dropping row",
				slog.Int("line", raw.Line),
				slog.String("reason", "no category cell"))
			continue
		}

		text, _ := table.Lookup(raw, models.FieldValue)
		value, ok := parser.ParseValue(text)
		if !ok {
			warnMultiline(logger, raw)
			logger.Debug("dropping row",
				slog.Int("line", raw.Line),
				slog.String("reason", "value is not a finite number"),
				slog.String("value", text))
			continue
		}

		records = append(records, models.Record{
			Category: category,
			Value:    value,
			Line:     raw.Line,
		})
	}
	return records
}

func warnMultiline(logger *slog.Logger, raw models.RawRecord) {
	if !raw.Multiline() {
		return
	}
	logger.Warn("dropped row spans multiple lines; check for an unbalanced quote",
		slog.Int("line", raw.Line))
}
