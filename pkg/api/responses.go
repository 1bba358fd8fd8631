package api

import (
	"time"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/pkg/models"
	"github.com/subhashitt/LogPiolt/pkg/services"
)

// BatchResponse is the API shape of a batch. Records are deliberately
// excluded; they have their own endpoint with filtering and view control.
type BatchResponse struct {
	BatchID       string    `json:"batch_id"`
	Source        string    `json:"source,omitempty"`
	Author        string    `json:"author,omitempty"`
	LineCount     int       `json:"line_count"`
	RecordCount   int       `json:"record_count"`
	FallbackCount int       `json:"fallback_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func toBatchResponse(b *ent.LogBatch) BatchResponse {
	resp := BatchResponse{
		BatchID:       b.ID,
		Source:        b.Source,
		LineCount:     b.LineCount,
		RecordCount:   b.RecordCount,
		FallbackCount: b.FallbackCount,
		CreatedAt:     b.CreatedAt,
	}
	if b.Author != nil {
		resp.Author = *b.Author
	}
	return resp
}

// IngestResponse is returned from POST /api/v1/batches.
type IngestResponse struct {
	Batch    BatchResponse `json:"batch"`
	Warnings []string      `json:"warnings,omitempty"`
}

// BatchListResponse is one page of batches.
type BatchListResponse struct {
	Batches    []BatchResponse `json:"batches"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// RecordsResponse carries a batch's (possibly filtered, possibly masked) records.
type RecordsResponse struct {
	BatchID string             `json:"batch_id"`
	View    string             `json:"view"`
	Count   int                `json:"count"`
	Records []models.LogRecord `json:"records"`
}

// JobResponse is the API shape of an analysis job.
type JobResponse struct {
	JobID        string     `json:"job_id"`
	BatchID      string     `json:"batch_id"`
	Status       string     `json:"status"`
	Result       string     `json:"result,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func toJobResponse(j *ent.AnalysisJob) JobResponse {
	resp := JobResponse{
		JobID:       j.ID,
		BatchID:     j.BatchID,
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt,
		StartedAt:   j.StartedAt,
		CompletedAt: j.CompletedAt,
	}
	if j.Result != nil {
		resp.Result = *j.Result
	}
	if j.ErrorMessage != nil {
		resp.ErrorMessage = *j.ErrorMessage
	}
	return resp
}

// HealthCheck is one component's health within the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string                    `json:"status"`
	Version  string                    `json:"version"`
	Checks   map[string]HealthCheck    `json:"checks"`
	Warnings []*services.SystemWarning `json:"warnings,omitempty"`
}
