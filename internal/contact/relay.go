// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/taibuivan/nolfolio/internal/platform/apperr"
	"github.com/taibuivan/nolfolio/internal/platform/constants"
)

// # Relay Settings

const (
	relayTimeout = 10 * time.Second

	breakerName             = "contact-relay"
	breakerMaxRequests      = 1
	breakerInterval         = time.Minute
	breakerOpenTimeout      = 30 * time.Second
	breakerFailureThreshold = 3

	// maxRelayResponseBytes bounds how much of the relay reply is read.
	maxRelayResponseBytes = 16 << 10

	relayTemplate = "box"
)

// Sender delivers a validated submission.
type Sender interface {
	Send(context context.Context, submission Submission) error
}

// # Form Relay

// FormRelay posts submissions to a FormSubmit-compatible AJAX endpoint.
//
// Calls go through a circuit breaker: after consecutive failures the relay is
// skipped for a cool-down and callers get SERVICE_UNAVAILABLE immediately.
type FormRelay struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker[struct{}]
	logger   *slog.Logger
}

// NewFormRelay constructs a relay. A nil client uses one with a 10s timeout.
func NewFormRelay(endpoint string, client *http.Client, logger *slog.Logger) *FormRelay {
	if client == nil {
		client = &http.Client{Timeout: relayTimeout}
	}

	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		// A visitor leaving or the request deadline passing says nothing
		// about the relay's health.
		IsSuccessful: func(err error) bool {
			var gone *callerGoneError
			return err == nil || errors.As(err, &gone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("contact_relay_breaker_state_changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &FormRelay{
		endpoint: endpoint,
		client:   client,
		breaker:  gobreaker.NewCircuitBreaker[struct{}](settings),
		logger:   logger,
	}
}

// State reports the breaker state ("closed", "half-open", "open").
func (relay *FormRelay) State() string {
	return relay.breaker.State().String()
}

// callerGoneError marks a relay call abandoned because the caller's context
// ended. The breaker counts it as a success.
type callerGoneError struct {
	cause error
}

func (e *callerGoneError) Error() string { return "relay: caller gone: " + e.cause.Error() }

func (e *callerGoneError) Unwrap() error { return e.cause }

// Send implements [Sender].
//
// Returns:
//   - SERVICE_UNAVAILABLE while the breaker is open
//   - BAD_GATEWAY when the relay rejects or cannot be reached
//   - the context error when the caller's context ended first
func (relay *FormRelay) Send(context context.Context, submission Submission) error {
	_, err := relay.breaker.Execute(func() (struct{}, error) {
		if err := relay.post(context, submission); err != nil {
			if ctxErr := context.Err(); ctxErr != nil {
				return struct{}{}, &callerGoneError{cause: ctxErr}
			}
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	var gone *callerGoneError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &gone):
		return gone.cause
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return apperr.ServiceUnavailable("The contact form is temporarily unavailable")
	default:
		return apperr.BadGateway("The message could not be delivered", err)
	}
}

// relayPayload is the FormSubmit AJAX body. Underscore keys are relay options.
type relayPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"_subject"`
	Message  string `json:"message"`
	Template string `json:"_template"`
	ReplyTo  string `json:"_replyto"`
}

type relayReply struct {
	Success any    `json:"success"`
	Message string `json:"message"`
}

func (relay *FormRelay) post(context context.Context, submission Submission) error {
	subject := submission.Subject
	if subject == "" {
		subject = "New message from " + submission.Name
	}

	body, err := json.Marshal(relayPayload{
		Name:     submission.Name,
		Email:    submission.Email,
		Subject:  subject,
		Message:  submission.Message,
		Template: relayTemplate,
		ReplyTo:  submission.Email,
	})
	if err != nil {
		return fmt.Errorf("relay: encode: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, relay.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	request.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	request.Header.Set("Accept", "application/json")

	response, err := relay.client.Do(request)
	if err != nil {
		return fmt.Errorf("relay: %w", err)
	}
	defer response.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxRelayResponseBytes))

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("relay: unexpected status %d", response.StatusCode)
	}

	// FormSubmit reports rejections with a 200 and success "false".
	var reply relayReply
	if err := json.Unmarshal(raw, &reply); err == nil && fmt.Sprint(reply.Success) == "false" {
		return fmt.Errorf("relay: rejected: %s", reply.Message)
	}

	return nil
}
