package regen

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/frontdeskai/receptionist-core/internal/core/pipeline"
	"github.com/frontdeskai/receptionist-core/internal/models"
	"github.com/frontdeskai/receptionist-core/internal/repositories"
)

// Service is the regeneration entry point used by handlers and the worker.
// Configuration changes call Enqueue; operators and onboarding flows call
// RegenerateNow for a synchronous run.
type Service struct {
	queue    repositories.RegenerationQueueRepository
	pipeline *pipeline.Service
}

func NewService(queue repositories.RegenerationQueueRepository, p *pipeline.Service) *Service {
	return &Service{queue: queue, pipeline: p}
}

// Enqueue records that a business's prompt is stale. Duplicate requests
// while a job is already pending collapse into the existing job; the caller
// gets that job back and no error.
func (s *Service) Enqueue(ctx context.Context, businessID uuid.UUID, reason models.TriggerReason) (*models.RegenerationJob, error) {
	job, inserted, err := s.queue.Enqueue(ctx, businessID, reason)
	if err != nil {
		return nil, err
	}

	if inserted {
		log.Info().
			Str("business_id", businessID.String()).
			Str("reason", string(reason)).
			Msg("regeneration job queued")
	} else {
		log.Debug().
			Str("business_id", businessID.String()).
			Str("reason", string(reason)).
			Msg("regeneration already pending, request coalesced")
	}
	return job, nil
}

// RegenerateNow runs the pipeline synchronously. On success it cancels any
// pending queued job for the same business, so the queue does not rerun and
// overwrite the artifact this call just produced.
func (s *Service) RegenerateNow(ctx context.Context, businessID uuid.UUID) (*pipeline.PipelineResult, error) {
	result, err := s.pipeline.GeneratePrompt(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if result.Success {
		cancelled, cancelErr := s.queue.CancelPending(ctx, businessID)
		if cancelErr != nil {
			log.Warn().Err(cancelErr).
				Str("business_id", businessID.String()).
				Msg("failed to cancel pending job after synchronous regeneration")
		} else if cancelled {
			log.Info().
				Str("business_id", businessID.String()).
				Msg("pending regeneration cancelled, superseded by synchronous run")
		}
	}

	return result, nil
}

// PendingCount reports the queue depth.
func (s *Service) PendingCount(ctx context.Context) (int64, error) {
	return s.queue.PendingCount(ctx)
}
