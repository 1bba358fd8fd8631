package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisJob holds the schema definition for the AnalysisJob entity.
// One job is a single request to run the external analyzer over the
// masked records of a batch, claimed and executed by the worker pool.
type AnalysisJob struct {
	ent.Schema
}

// Fields of the AnalysisJob.
func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("batch_id").
			Comment("Batch this job analyzes"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Text("result").
			Optional().
			Nillable().
			Comment("Analyzer output, only on completed jobs"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the job (pending to in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AnalysisJob.
func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", LogBatch.Type).
			Ref("analysis_jobs").
			Field("batch_id").
			Unique().
			Required(),
	}
}

// Indexes of the AnalysisJob.
func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("batch_id"),
		index.Fields("status", "created_at"),
	}
}
