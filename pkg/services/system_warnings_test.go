package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategoryAnalyzerHealth, "Analyzer unreachable", "connection refused", "analyzer")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryAnalyzerHealth, warnings[0].Category)
	assert.Equal(t, "Analyzer unreachable", warnings[0].Message)
	assert.Equal(t, "connection refused", warnings[0].Details)
	assert.Equal(t, "analyzer", warnings[0].Source)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearBySource(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryAnalyzerHealth, "Analyzer unreachable", "", "analyzer")
	svc.AddWarning(WarningCategoryAnalyzerHealth, "Backup analyzer unreachable", "", "analyzer-backup")

	assert.Len(t, svc.GetWarnings(), 2)

	cleared := svc.ClearBySource(WarningCategoryAnalyzerHealth, "analyzer")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "analyzer-backup", svc.GetWarnings()[0].Source)

	cleared = svc.ClearBySource(WarningCategoryAnalyzerHealth, "nonexistent")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryAnalyzerHealth, "First error", "err1", "analyzer")
	svc.AddWarning(WarningCategoryAnalyzerHealth, "Second error", "err2", "analyzer")

	// Should have replaced the first warning, not added a second
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second error", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_NilReceiver(t *testing.T) {
	var svc *SystemWarningsService

	assert.Empty(t, svc.AddWarning("cat", "msg", "", ""))
	assert.Nil(t, svc.GetWarnings())
	assert.False(t, svc.ClearBySource("cat", ""))
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ThreadSafety(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	// Concurrent adds
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddWarning("test", "msg", "", "")
		}()
	}

	// Concurrent reads
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}

	wg.Wait()
	// Just ensure no panics — exact count doesn't matter for concurrency test
	assert.NotNil(t, svc.GetWarnings())
}
