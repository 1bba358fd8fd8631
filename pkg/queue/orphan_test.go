package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	testdb "github.com/subhashitt/LogPiolt/test/database"
)

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	batch := createTestBatch(t, client.Client, "INFO line")

	// Job abandoned by a previous run of this pod.
	orphan := createTestJob(t, client.Client, batch.ID)
	_, err := orphan.Update().
		SetStatus(analysisjob.StatusInProgress).
		SetPodID("my-pod").
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// In-progress job owned by a different pod: must not be touched.
	other := createTestJob(t, client.Client, batch.ID)
	_, err = other.Update().
		SetStatus(analysisjob.StatusInProgress).
		SetPodID("other-pod").
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// Pending job: must not be touched either.
	pending := createTestJob(t, client.Client, batch.ID)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "my-pod"))

	recovered, err := client.AnalysisJob.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, recovered.Status)
	require.NotNil(t, recovered.ErrorMessage)
	assert.Contains(t, *recovered.ErrorMessage, "restarted while job was in progress")
	assert.NotNil(t, recovered.CompletedAt)

	untouched, err := client.AnalysisJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusInProgress, untouched.Status)

	stillPending, err := client.AnalysisJob.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, stillPending.Status)
}

func TestCleanupStartupOrphans_NoOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	require.NoError(t, CleanupStartupOrphans(context.Background(), client.Client, "my-pod"))
}
