// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nolfolio/internal/contact"
	"github.com/taibuivan/nolfolio/internal/platform/apperr"
	"github.com/taibuivan/nolfolio/pkg/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSender struct {
	mu   sync.Mutex
	sent []contact.Submission
	err  error
}

func (sender *fakeSender) Send(_ context.Context, submission contact.Submission) error {
	sender.mu.Lock()
	defer sender.mu.Unlock()

	if sender.err != nil {
		return sender.err
	}
	sender.sent = append(sender.sent, submission)
	return nil
}

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Tour video",
		Message: "We would love a recap of the Chicago show.",
	}
}

/*
TestSubmission_Validate lists every failing field.
*/
func TestSubmission_Validate(t *testing.T) {
	assert.NoError(t, validSubmission().Validate())

	noSubject := validSubmission()
	noSubject.Subject = ""
	assert.NoError(t, noSubject.Validate())

	err := contact.Submission{Email: "not-an-email", Subject: strings.Repeat("s", 201)}.Validate()
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields := map[string]bool{}
	for _, detail := range appErr.Details {
		fields[detail.Field] = true
	}
	assert.Equal(t, map[string]bool{
		contact.FieldName:    true,
		contact.FieldEmail:   true,
		contact.FieldSubject: true,
		contact.FieldMessage: true,
	}, fields)
}

/*
TestService_Submit relays once and rejects the duplicate.
*/
func TestService_Submit(t *testing.T) {
	sender := &fakeSender{}
	service := contact.NewService(contact.NewMemoryGuard(), sender, time.Minute, discardLogger())

	submission := validSubmission()
	submission.Name = "  Ada  "

	receipt, err := service.Submit(context.Background(), submission)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusSent, receipt.Status)
	assert.True(t, uuid.Valid(receipt.ID))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Ada", sender.sent[0].Name)

	duplicate := validSubmission()
	duplicate.Email = "ADA@example.com"
	_, err = service.Submit(context.Background(), duplicate)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Len(t, sender.sent, 1)

	other := validSubmission()
	other.Message = "A different message."
	_, err = service.Submit(context.Background(), other)
	assert.NoError(t, err)
}

/*
TestService_Submit_Invalid never reaches the relay.
*/
func TestService_Submit_Invalid(t *testing.T) {
	sender := &fakeSender{}
	service := contact.NewService(contact.NewMemoryGuard(), sender, time.Minute, discardLogger())

	_, err := service.Submit(context.Background(), contact.Submission{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, sender.sent)
}

/*
TestService_Submit_RelayFailureReleasesClaim lets the visitor retry.
*/
func TestService_Submit_RelayFailureReleasesClaim(t *testing.T) {
	sender := &fakeSender{err: apperr.BadGateway("down", errors.New("boom"))}
	service := contact.NewService(contact.NewMemoryGuard(), sender, time.Minute, discardLogger())

	_, err := service.Submit(context.Background(), validSubmission())
	require.Error(t, err)
	assert.Equal(t, "BAD_GATEWAY", apperr.As(err).Code)

	sender.mu.Lock()
	sender.err = nil
	sender.mu.Unlock()

	_, err = service.Submit(context.Background(), validSubmission())
	assert.NoError(t, err)
}

/*
TestService_Submit_GuardOutage still delivers when Redis is unreachable.
*/
func TestService_Submit_GuardOutage(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	sender := &fakeSender{}
	service := contact.NewService(contact.NewRedisGuard(client), sender, time.Minute, discardLogger())

	_, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Len(t, sender.sent, 1)
}

/*
TestMemoryGuard expires claims after the TTL.
*/
func TestMemoryGuard(t *testing.T) {
	guard := contact.NewMemoryGuard()
	ctx := context.Background()

	ok, err := guard.Claim(ctx, "k", 20*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = guard.Claim(ctx, "k", 20*time.Millisecond)
	assert.False(t, ok)

	time.Sleep(40 * time.Millisecond)
	ok, _ = guard.Claim(ctx, "k", time.Minute)
	assert.True(t, ok)

	require.NoError(t, guard.Release(ctx, "k"))
	ok, _ = guard.Claim(ctx, "k", time.Minute)
	assert.True(t, ok)
}

/*
TestFormRelay_Send posts the FormSubmit payload.
*/
func TestFormRelay_Send(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Contains(t, request.Header.Get("Content-Type"), "application/json")
		assert.NoError(t, json.NewDecoder(request.Body).Decode(&received))
		_, _ = writer.Write([]byte(`{"success":"true","message":"The form was submitted successfully."}`))
	}))
	defer server.Close()

	relay := contact.NewFormRelay(server.URL, server.Client(), discardLogger())

	submission := validSubmission()
	submission.Subject = ""
	require.NoError(t, relay.Send(context.Background(), submission))

	assert.Equal(t, "Ada", received["name"])
	assert.Equal(t, "ada@example.com", received["email"])
	assert.Equal(t, "ada@example.com", received["_replyto"])
	assert.Equal(t, "New message from Ada", received["_subject"])
	assert.Equal(t, "box", received["_template"])
}

/*
TestFormRelay_Rejections maps upstream failures to BAD_GATEWAY.
*/
func TestFormRelay_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: true},
		{name: "soft rejection", status: http.StatusOK, body: `{"success":"false","message":"Activate form"}`, wantErr: true},
		{name: "non json success", status: http.StatusOK, body: `ok`, wantErr: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(tc.status)
				_, _ = writer.Write([]byte(tc.body))
			}))
			defer server.Close()

			err := contact.NewFormRelay(server.URL, server.Client(), discardLogger()).Send(context.Background(), validSubmission())
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "BAD_GATEWAY", apperr.As(err).Code)
		})
	}
}

/*
TestFormRelay_BreakerOpens after three consecutive failures.
*/
func TestFormRelay_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writer.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	relay := contact.NewFormRelay(server.URL, server.Client(), discardLogger())

	for range 3 {
		assert.Equal(t, "BAD_GATEWAY", apperr.As(relay.Send(context.Background(), validSubmission())).Code)
	}
	assert.Equal(t, "open", relay.State())

	err := relay.Send(context.Background(), validSubmission())
	assert.Equal(t, "SERVICE_UNAVAILABLE", apperr.As(err).Code)
	assert.Equal(t, int32(3), calls.Load())
}

/*
TestFormRelay_CallerCancellationKeepsBreakerClosed checks that requests
abandoned by their caller neither trip the breaker nor report BAD_GATEWAY.
*/
func TestFormRelay_CallerCancellationKeepsBreakerClosed(t *testing.T) {
	var slow atomic.Bool
	slow.Store(true)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if slow.Load() {
			select {
			case <-request.Context().Done():
			case <-time.After(200 * time.Millisecond):
			}
		}
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"success":"true"}`))
	}))
	defer server.Close()

	relay := contact.NewFormRelay(server.URL, server.Client(), discardLogger())

	for range 4 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		err := relay.Send(ctx, validSubmission())
		cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, apperr.As(err))
	}
	assert.Equal(t, "closed", relay.State())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, relay.Send(ctx, validSubmission()), context.Canceled)
	assert.Equal(t, "closed", relay.State())

	slow.Store(false)
	assert.NoError(t, relay.Send(context.Background(), validSubmission()))
}

/*
TestHandler_Submit returns 202 with the receipt.
*/
func TestHandler_Submit(t *testing.T) {
	service := contact.NewService(contact.NewMemoryGuard(), &fakeSender{}, time.Minute, discardLogger())
	router := contact.NewHandler(service, 5, time.Minute).Routes()

	body := `{"name":"Ada","email":"ada@example.com","subject":"","message":"Hello"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data contact.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "sent", envelope.Data.Status)
	assert.NotEmpty(t, envelope.Data.ID)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

/*
TestHandler_RateLimit answers RATE_LIMITED once the per-IP budget is spent.
*/
func TestHandler_RateLimit(t *testing.T) {
	service := contact.NewService(contact.NewMemoryGuard(), &fakeSender{}, time.Minute, discardLogger())
	router := contact.NewHandler(service, 2, time.Minute).Routes()

	post := func() int {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		request.RemoteAddr = "198.51.100.7:4000"
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusBadRequest, post())
	assert.Equal(t, http.StatusBadRequest, post())

	assert.Equal(t, http.StatusTooManyRequests, post())
}
