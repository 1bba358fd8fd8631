package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
)

// CleanupStartupOrphans performs a one-time cleanup of jobs owned by this pod
// that were in-progress when the pod previously crashed. They are marked as
// failed; callers resubmit if they still want the analysis.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.AnalysisJob.Query().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusInProgress),
			analysisjob.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, job := range orphans {
		err := job.Update().
			SetStatus(analysisjob.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while job was in progress", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"job_id", job.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}

	return nil
}
