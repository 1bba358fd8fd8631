// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "batch_id", Type: field.TypeString},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_jobs_log_batches_analysis_jobs",
				Columns:    []*schema.Column{AnalysisJobsColumns[8]},
				RefColumns: []*schema.Column{LogBatchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[1]},
			},
			{
				Name:    "analysisjob_batch_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[8]},
			},
			{
				Name:    "analysisjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[1], AnalysisJobsColumns[5]},
			},
		},
	}
	// LogBatchesColumns holds the columns for the "log_batches" table.
	LogBatchesColumns = []*schema.Column{
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "line_count", Type: field.TypeInt},
		{Name: "record_count", Type: field.TypeInt},
		{Name: "fallback_count", Type: field.TypeInt},
		{Name: "records", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LogBatchesTable holds the schema information for the "log_batches" table.
	LogBatchesTable = &schema.Table{
		Name:       "log_batches",
		Columns:    LogBatchesColumns,
		PrimaryKey: []*schema.Column{LogBatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "logbatch_source",
				Unique:  false,
				Columns: []*schema.Column{LogBatchesColumns[1]},
			},
			{
				Name:    "logbatch_created_at",
				Unique:  false,
				Columns: []*schema.Column{LogBatchesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobsTable,
		LogBatchesTable,
	}
)

func init() {
	AnalysisJobsTable.ForeignKeys[0].RefTable = LogBatchesTable
}
