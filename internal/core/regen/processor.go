package regen

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/frontdeskai/receptionist-core/internal/core/pipeline"
	"github.com/frontdeskai/receptionist-core/internal/models"
	"github.com/frontdeskai/receptionist-core/internal/repositories"
)

// Processor drains the regeneration queue. The worker binary runs it on a
// schedule; the ops API exposes a manual trigger.
type Processor struct {
	queue    repositories.RegenerationQueueRepository
	pipeline *pipeline.Service
	// batchLimit caps one drain pass so a deep queue cannot pin a worker
	// tick indefinitely. Zero means drain until empty.
	batchLimit int
}

// ProcessReport summarizes one drain pass.
type ProcessReport struct {
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

func NewProcessor(queue repositories.RegenerationQueueRepository, p *pipeline.Service, batchLimit int) *Processor {
	return &Processor{queue: queue, pipeline: p, batchLimit: batchLimit}
}

// ProcessPending claims and runs pending jobs one at a time until the queue
// is empty or the batch limit is hit. A failed job is marked failed and the
// pass continues; one broken business must not starve the rest of the queue.
func (p *Processor) ProcessPending(ctx context.Context) (*ProcessReport, error) {
	report := &ProcessReport{}

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if p.batchLimit > 0 && report.Processed+report.Failed >= p.batchLimit {
			return report, nil
		}

		job, err := p.queue.ClaimNext(ctx)
		if err != nil {
			return report, err
		}
		if job == nil {
			return report, nil
		}

		if runErr := p.runJob(ctx, job.BusinessID.String(), job); runErr != nil {
			report.Failed++
			report.Errors = append(report.Errors, runErr.Error())
		} else {
			report.Processed++
		}
	}
}

func (p *Processor) runJob(ctx context.Context, businessID string, job *models.RegenerationJob) error {
	result, err := p.pipeline.GeneratePrompt(ctx, job.BusinessID)

	switch {
	case err != nil:
		// Hard failures (missing business, invalid configuration) will not
		// heal on retry; mark the job failed with the cause.
		p.markFailed(ctx, job, err)
		return fmt.Errorf("job %s (business %s): %w", job.ID, businessID, err)

	case !result.Success:
		genErr := errors.New(result.Error)
		p.markFailed(ctx, job, genErr)
		return fmt.Errorf("job %s (business %s): %s", job.ID, businessID, result.Error)

	default:
		if markErr := p.queue.MarkCompleted(ctx, job.ID); markErr != nil {
			log.Error().Err(markErr).
				Str("job_id", job.ID.String()).
				Msg("failed to mark regeneration job completed")
		}
		log.Info().
			Str("job_id", job.ID.String()).
			Str("business_id", businessID).
			Str("reason", string(job.Reason)).
			Int("version", result.Artifact.Version).
			Msg("queued regeneration completed")
		return nil
	}
}

func (p *Processor) markFailed(ctx context.Context, job *models.RegenerationJob, cause error) {
	if err := p.queue.MarkFailed(ctx, job.ID, cause); err != nil {
		log.Error().Err(err).
			Str("job_id", job.ID.String()).
			Msg("failed to mark regeneration job failed")
	}
}
