// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/taibuivan/nolfolio/internal/platform/apperr"
	requestutil "github.com/taibuivan/nolfolio/internal/platform/request"
	"github.com/taibuivan/nolfolio/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the contact form.
type Handler struct {
	service *Service
	limit   int
	window  time.Duration
}

// NewHandler constructs a contact [Handler]. Each IP may submit limit times per window.
func NewHandler(service *Service, limit int, window time.Duration) *Handler {
	return &Handler{service: service, limit: limit, window: window}
}

// Routes returns a [chi.Router] with the contact endpoint behind a per-IP limiter.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(httprate.Limit(handler.limit, handler.window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(writer http.ResponseWriter, request *http.Request) {
			respond.Error(writer, request, apperr.RateLimited(int(handler.window.Seconds())))
		}),
	))

	router.Post("/", handler.submit)

	return router
}

/*
POST /api/v1/contact.

Description: Relays a contact form submission to the studio inbox.

Request:
  - name: string (required)
  - email: string (required)
  - subject: string
  - message: string (required)

Response:
  - 202: Receipt {id, status: "sent"}
  - 400: VALIDATION_ERROR
  - 409: CONFLICT (same message already sent)
  - 429: RATE_LIMITED
  - 502/503: relay failure or breaker open
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var submission Submission
	if err := requestutil.DecodeJSON(writer, request, &submission); err != nil {
		respond.Error(writer, request, err)
		return
	}

	receipt, err := handler.service.Submit(request.Context(), submission)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Accepted(writer, receipt)
}
