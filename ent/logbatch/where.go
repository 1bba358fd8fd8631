// Code generated by ent, DO NOT EDIT.

package logbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/subhashitt/LogPiolt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldContainsFold(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldSource, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldAuthor, v))
}

// LineCount applies equality check predicate on the "line_count" field. It's identical to LineCountEQ.
func LineCount(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldLineCount, v))
}

// RecordCount applies equality check predicate on the "record_count" field. It's identical to RecordCountEQ.
func RecordCount(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldRecordCount, v))
}

// FallbackCount applies equality check predicate on the "fallback_count" field. It's identical to FallbackCountEQ.
func FallbackCount(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldFallbackCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldContainsFold(FieldSource, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldContainsFold(FieldAuthor, v))
}

// LineCountEQ applies the EQ predicate on the "line_count" field.
func LineCountEQ(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldLineCount, v))
}

// LineCountNEQ applies the NEQ predicate on the "line_count" field.
func LineCountNEQ(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNEQ(FieldLineCount, v))
}

// LineCountIn applies the In predicate on the "line_count" field.
func LineCountIn(vs ...int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIn(FieldLineCount, vs...))
}

// LineCountNotIn applies the NotIn predicate on the "line_count" field.
func LineCountNotIn(vs ...int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotIn(FieldLineCount, vs...))
}

// LineCountGT applies the GT predicate on the "line_count" field.
func LineCountGT(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGT(FieldLineCount, v))
}

// LineCountGTE applies the GTE predicate on the "line_count" field.
func LineCountGTE(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGTE(FieldLineCount, v))
}

// LineCountLT applies the LT predicate on the "line_count" field.
func LineCountLT(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLT(FieldLineCount, v))
}

// LineCountLTE applies the LTE predicate on the "line_count" field.
func LineCountLTE(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLTE(FieldLineCount, v))
}

// RecordCountEQ applies the EQ predicate on the "record_count" field.
func RecordCountEQ(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldRecordCount, v))
}

// RecordCountNEQ applies the NEQ predicate on the "record_count" field.
func RecordCountNEQ(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNEQ(FieldRecordCount, v))
}

// RecordCountIn applies the In predicate on the "record_count" field.
func RecordCountIn(vs ...int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIn(FieldRecordCount, vs...))
}

// RecordCountNotIn applies the NotIn predicate on the "record_count" field.
func RecordCountNotIn(vs ...int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotIn(FieldRecordCount, vs...))
}

// RecordCountGT applies the GT predicate on the "record_count" field.
func RecordCountGT(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGT(FieldRecordCount, v))
}

// RecordCountGTE applies the GTE predicate on the "record_count" field.
func RecordCountGTE(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGTE(FieldRecordCount, v))
}

// RecordCountLT applies the LT predicate on the "record_count" field.
func RecordCountLT(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLT(FieldRecordCount, v))
}

// RecordCountLTE applies the LTE predicate on the "record_count" field.
func RecordCountLTE(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLTE(FieldRecordCount, v))
}

// FallbackCountEQ applies the EQ predicate on the "fallback_count" field.
func FallbackCountEQ(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldFallbackCount, v))
}

// FallbackCountNEQ applies the NEQ predicate on the "fallback_count" field.
func FallbackCountNEQ(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNEQ(FieldFallbackCount, v))
}

// FallbackCountIn applies the In predicate on the "fallback_count" field.
func FallbackCountIn(vs ...int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIn(FieldFallbackCount, vs...))
}

// FallbackCountNotIn applies the NotIn predicate on the "fallback_count" field.
func FallbackCountNotIn(vs ...int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotIn(FieldFallbackCount, vs...))
}

// FallbackCountGT applies the GT predicate on the "fallback_count" field.
func FallbackCountGT(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGT(FieldFallbackCount, v))
}

// FallbackCountGTE applies the GTE predicate on the "fallback_count" field.
func FallbackCountGTE(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGTE(FieldFallbackCount, v))
}

// FallbackCountLT applies the LT predicate on the "fallback_count" field.
func FallbackCountLT(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLT(FieldFallbackCount, v))
}

// FallbackCountLTE applies the LTE predicate on the "fallback_count" field.
func FallbackCountLTE(v int) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLTE(FieldFallbackCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LogBatch {
	return predicate.LogBatch(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAnalysisJobs applies the HasEdge predicate on the "analysis_jobs" edge.
func HasAnalysisJobs() predicate.LogBatch {
	return predicate.LogBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnalysisJobsTable, AnalysisJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisJobsWith applies the HasEdge predicate on the "analysis_jobs" edge with a given conditions (other predicates).
func HasAnalysisJobsWith(preds ...predicate.AnalysisJob) predicate.LogBatch {
	return predicate.LogBatch(func(s *sql.Selector) {
		step := newAnalysisJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LogBatch) predicate.LogBatch {
	return predicate.LogBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LogBatch) predicate.LogBatch {
	return predicate.LogBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LogBatch) predicate.LogBatch {
	return predicate.LogBatch(sql.NotPredicates(p))
}
