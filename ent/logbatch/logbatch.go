// Code generated by ent, DO NOT EDIT.

package logbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the logbatch type in the database.
	Label = "log_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "batch_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldLineCount holds the string denoting the line_count field in the database.
	FieldLineCount = "line_count"
	// FieldRecordCount holds the string denoting the record_count field in the database.
	FieldRecordCount = "record_count"
	// FieldFallbackCount holds the string denoting the fallback_count field in the database.
	FieldFallbackCount = "fallback_count"
	// FieldRecords holds the string denoting the records field in the database.
	FieldRecords = "records"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAnalysisJobs holds the string denoting the analysis_jobs edge name in mutations.
	EdgeAnalysisJobs = "analysis_jobs"
	// AnalysisJobFieldID holds the string denoting the ID field of the AnalysisJob.
	AnalysisJobFieldID = "job_id"
	// Table holds the table name of the logbatch in the database.
	Table = "log_batches"
	// AnalysisJobsTable is the table that holds the analysis_jobs relation/edge.
	AnalysisJobsTable = "analysis_jobs"
	// AnalysisJobsInverseTable is the table name for the AnalysisJob entity.
	// It exists in this package in order to avoid circular dependency with the "analysisjob" package.
	AnalysisJobsInverseTable = "analysis_jobs"
	// AnalysisJobsColumn is the table column denoting the analysis_jobs relation/edge.
	AnalysisJobsColumn = "batch_id"
)

// Columns holds all SQL columns for logbatch fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldAuthor,
	FieldLineCount,
	FieldRecordCount,
	FieldFallbackCount,
	FieldRecords,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LogBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByLineCount orders the results by the line_count field.
func ByLineCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineCount, opts...).ToFunc()
}

// ByRecordCount orders the results by the record_count field.
func ByRecordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordCount, opts...).ToFunc()
}

// ByFallbackCount orders the results by the fallback_count field.
func ByFallbackCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAnalysisJobsCount orders the results by analysis_jobs count.
func ByAnalysisJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysisJobsStep(), opts...)
	}
}

// ByAnalysisJobs orders the results by analysis_jobs terms.
func ByAnalysisJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnalysisJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisJobsInverseTable, AnalysisJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysisJobsTable, AnalysisJobsColumn),
	)
}
