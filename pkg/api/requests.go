package api

// IngestRequest is the body for POST /api/v1/batches.
type IngestRequest struct {
	Source string `json:"source"`
	Text   string `json:"text" binding:"required"`
}
