package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subhashitt/LogPiolt/pkg/filter"
	"github.com/subhashitt/LogPiolt/pkg/models"
	"github.com/subhashitt/LogPiolt/pkg/services"
)

// ingestBatchHandler handles POST /api/v1/batches.
func (s *Server) ingestBatchHandler(c *gin.Context) {
	// Bound the body before binding; raw logs can be arbitrarily large.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxIngestBytes)

	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "log text exceeds the ingest size limit",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.batchService.Ingest(c.Request.Context(), services.IngestInput{
		Source: req.Source,
		Text:   req.Text,
		Author: extractAuthor(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IngestResponse{
		Batch:    toBatchResponse(result.Batch),
		Warnings: result.Warnings,
	})
}

// listBatchesHandler handles GET /api/v1/batches. Filter parameters:
// source, from, to (RFC 3339, on batch creation time), limit, offset.
func (s *Server) listBatchesHandler(c *gin.Context) {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}
	createdFrom, err := timeQuery(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp, want RFC 3339"})
		return
	}
	createdTo, err := timeQuery(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp, want RFC 3339"})
		return
	}

	result, err := s.batchService.ListBatches(c.Request.Context(), services.BatchListFilters{
		Source:      c.Query("source"),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	batches := make([]BatchResponse, 0, len(result.Batches))
	for _, b := range result.Batches {
		batches = append(batches, toBatchResponse(b))
	}

	c.JSON(http.StatusOK, BatchListResponse{
		Batches:    batches,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// getBatchHandler handles GET /api/v1/batches/:id.
func (s *Server) getBatchHandler(c *gin.Context) {
	batch, err := s.batchService.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBatchResponse(batch))
}

// getRecordsHandler handles GET /api/v1/batches/:id/records.
//
// The default view is masked; callers must ask for view=raw explicitly to see
// unredacted content. Filter parameters: from, to (RFC 3339), level, keyword,
// component, responseCode.
func (s *Server) getRecordsHandler(c *gin.Context) {
	view := c.DefaultQuery("view", "masked")
	if view != "masked" && view != "raw" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be 'masked' or 'raw'"})
		return
	}

	recordFilter, err := recordFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := s.batchService.GetRecords(c.Request.Context(), c.Param("id"), recordFilter, view == "masked")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if records == nil {
		records = []models.LogRecord{}
	}

	c.JSON(http.StatusOK, RecordsResponse{
		BatchID: c.Param("id"),
		View:    view,
		Count:   len(records),
		Records: records,
	})
}

func recordFilterFromQuery(c *gin.Context) (*filter.RecordFilter, error) {
	f := &filter.RecordFilter{
		Level:        models.LogLevel(c.Query("level")),
		Keyword:      c.Query("keyword"),
		Component:    c.Query("component"),
		ResponseCode: c.Query("responseCode"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, errors.New("invalid 'from' timestamp, want RFC 3339")
		}
		f.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return nil, errors.New("invalid 'to' timestamp, want RFC 3339")
		}
		f.To = &t
	}

	return f, nil
}

func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
