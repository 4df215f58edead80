// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/nolfolio/internal/platform/apperr"
	"github.com/taibuivan/nolfolio/internal/platform/metrics"
	"github.com/taibuivan/nolfolio/pkg/uuid"
)

// Submission outcomes, as counted in metrics.
const (
	outcomeSent        = "sent"
	outcomeDuplicate   = "duplicate"
	outcomeInvalid     = "invalid"
	outcomeRelayFailed = "relay_failed"
)

// # Service Layer

// Service validates, deduplicates and relays contact submissions.
type Service struct {
	guard  Guard
	sender Sender
	ttl    time.Duration
	logger *slog.Logger
}

// NewService constructs a new contact [Service]. ttl is the duplicate window.
func NewService(guard Guard, sender Sender, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{guard: guard, sender: sender, ttl: ttl, logger: logger}
}

/*
Submit relays one submission.

Parameters:
  - context: context.Context
  - submission: Submission (fields are trimmed before validation)

Returns:
  - Receipt: Submission ID (UUIDv7) and status
  - error: VALIDATION_ERROR, CONFLICT for a duplicate, BAD_GATEWAY or SERVICE_UNAVAILABLE from the relay
*/
func (service *Service) Submit(context context.Context, submission Submission) (Receipt, error) {
	clean := submission.normalized()

	if err := clean.Validate(); err != nil {
		metrics.ContactSubmissions.WithLabelValues(outcomeInvalid).Inc()
		return Receipt{}, err
	}

	key := clean.fingerprint()

	claimed, err := service.guard.Claim(context, key, service.ttl)
	if err != nil {
		// Guard outage: deliver without duplicate detection.
		service.logger.Warn("contact_guard_unavailable", slog.Any("error", err))
		claimed = true
	}
	if !claimed {
		metrics.ContactSubmissions.WithLabelValues(outcomeDuplicate).Inc()
		return Receipt{}, apperr.Conflict("This message was already sent")
	}

	if err := service.sender.Send(context, clean); err != nil {
		metrics.ContactSubmissions.WithLabelValues(outcomeRelayFailed).Inc()
		if releaseErr := service.guard.Release(context, key); releaseErr != nil {
			service.logger.Warn("contact_guard_release_failed", slog.Any("error", releaseErr))
		}
		return Receipt{}, err
	}

	receipt := Receipt{ID: uuid.New(), Status: StatusSent}

	metrics.ContactSubmissions.WithLabelValues(outcomeSent).Inc()
	service.logger.Info("contact_submission_relayed", slog.String("submission_id", receipt.ID))

	return receipt, nil
}
