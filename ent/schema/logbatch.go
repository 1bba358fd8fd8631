package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/subhashitt/LogPiolt/pkg/models"
)

// LogBatch holds the schema definition for the LogBatch entity.
// A batch is one ingested blob of raw log text together with the
// structured records parsed from it.
type LogBatch struct {
	ent.Schema
}

// Fields of the LogBatch.
func (LogBatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.String("source").
			Optional().
			Comment("Caller-supplied origin label (e.g. 'payments-prod')"),
		field.String("author").
			Optional().
			Nillable().
			Comment("From oauth2-proxy"),
		field.Int("line_count").
			Comment("Non-blank lines seen by the parser"),
		field.Int("record_count").
			Comment("Records produced; equals line_count by construction"),
		field.Int("fallback_count").
			Comment("Lines that hit the parser's panic fallback"),
		field.JSON("records", []models.LogRecord{}).
			Comment("Parsed records in original line order"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the LogBatch.
func (LogBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("analysis_jobs", AnalysisJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the LogBatch.
func (LogBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
		index.Fields("created_at"),
	}
}
