// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/subhashitt/LogPiolt/ent/logbatch"
	"github.com/subhashitt/LogPiolt/pkg/models"
)

// LogBatch is the model entity for the LogBatch schema.
type LogBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Caller-supplied origin label (e.g. 'payments-prod')
	Source string `json:"source,omitempty"`
	// From oauth2-proxy
	Author *string `json:"author,omitempty"`
	// Non-blank lines seen by the parser
	LineCount int `json:"line_count,omitempty"`
	// Records produced; equals line_count by construction
	RecordCount int `json:"record_count,omitempty"`
	// Lines that hit the parser's panic fallback
	FallbackCount int `json:"fallback_count,omitempty"`
	// Parsed records in original line order
	Records []models.LogRecord `json:"records,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LogBatchQuery when eager-loading is set.
	Edges        LogBatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LogBatchEdges holds the relations/edges for other nodes in the graph.
type LogBatchEdges struct {
	// AnalysisJobs holds the value of the analysis_jobs edge.
	AnalysisJobs []*AnalysisJob `json:"analysis_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnalysisJobsOrErr returns the AnalysisJobs value or an error if the edge
// was not loaded in eager-loading.
func (e LogBatchEdges) AnalysisJobsOrErr() ([]*AnalysisJob, error) {
	if e.loadedTypes[0] {
		return e.AnalysisJobs, nil
	}
	return nil, &NotLoadedError{edge: "analysis_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LogBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case logbatch.FieldRecords:
			values[i] = new([]byte)
		case logbatch.FieldLineCount, logbatch.FieldRecordCount, logbatch.FieldFallbackCount:
			values[i] = new(sql.NullInt64)
		case logbatch.FieldID, logbatch.FieldSource, logbatch.FieldAuthor:
			values[i] = new(sql.NullString)
		case logbatch.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LogBatch fields.
func (_m *LogBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case logbatch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case logbatch.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case logbatch.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case logbatch.FieldLineCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_count", values[i])
			} else if value.Valid {
				_m.LineCount = int(value.Int64)
			}
		case logbatch.FieldRecordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field record_count", values[i])
			} else if value.Valid {
				_m.RecordCount = int(value.Int64)
			}
		case logbatch.FieldFallbackCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_count", values[i])
			} else if value.Valid {
				_m.FallbackCount = int(value.Int64)
			}
		case logbatch.FieldRecords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field records", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Records); err != nil {
					return fmt.Errorf("unmarshal field records: %w", err)
				}
			}
		case logbatch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LogBatch.
// This includes values selected through modifiers, order, etc.
func (_m *LogBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalysisJobs queries the "analysis_jobs" edge of the LogBatch entity.
func (_m *LogBatch) QueryAnalysisJobs() *AnalysisJobQuery {
	return NewLogBatchClient(_m.config).QueryAnalysisJobs(_m)
}

// Update returns a builder for updating this LogBatch.
// Note that you need to call LogBatch.Unwrap() before calling this method if this LogBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LogBatch) Update() *LogBatchUpdateOne {
	return NewLogBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LogBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LogBatch) Unwrap() *LogBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LogBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LogBatch) String() string {
	var builder strings.Builder
	builder.WriteString("LogBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("line_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineCount))
	builder.WriteString(", ")
	builder.WriteString("record_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordCount))
	builder.WriteString(", ")
	builder.WriteString("fallback_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackCount))
	builder.WriteString(", ")
	builder.WriteString("records=")
	builder.WriteString(fmt.Sprintf("%v", _m.Records))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LogBatches is a parsable slice of LogBatch.
type LogBatches []*LogBatch
