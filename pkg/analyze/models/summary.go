package models

// SummaryEntry holds the aggregate statistics of one category.
type SummaryEntry struct {
	// Sum is the total of all values in the category.
	Sum float64
	// Mean is Sum divided by Count.
	Mean float64
	// Count is the number of records in the category (always >= 1).
	Count int
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Summary maps category to its statistics.
	Summary map[string]SummaryEntry
	// TotalRowsProcessed is the number of validated records, equal to the sum of all counts.
	TotalRowsProcessed int
	// RowsRead is the number of data rows seen by the loader.
	RowsRead int
	// RowsDropped is the number of data rows excluded before aggregation.
	RowsDropped int
}
