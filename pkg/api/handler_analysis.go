package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// submitAnalysisHandler handles POST /api/v1/batches/:id/analyze.
// The job is queued and picked up asynchronously by the worker pool, so the
// response is 202 with the pending job.
func (s *Server) submitAnalysisHandler(c *gin.Context) {
	job, err := s.analysisService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, toJobResponse(job))
}

// listAnalysesHandler handles GET /api/v1/batches/:id/analyses.
func (s *Server) listAnalysesHandler(c *gin.Context) {
	batchID := c.Param("id")

	// 404 for unknown batches instead of an empty list.
	if _, err := s.batchService.GetBatch(c.Request.Context(), batchID); err != nil {
		respondServiceError(c, err)
		return
	}

	jobs, err := s.analysisService.ListJobsForBatch(c.Request.Context(), batchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	c.JSON(http.StatusOK, gin.H{"batch_id": batchID, "analyses": out})
}

// getAnalysisHandler handles GET /api/v1/analyses/:id.
func (s *Server) getAnalysisHandler(c *gin.Context) {
	job, err := s.analysisService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}
