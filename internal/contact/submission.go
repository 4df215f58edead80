// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact relays the portfolio's contact form to the studio inbox.

Core Responsibility:

  - Validation: Name, email and message are required; every field is length-capped.
  - Duplicates: The same sender and message is accepted once per dedupe window ([Guard]).
  - Delivery: Submissions are posted to a form relay behind a circuit breaker ([FormRelay]).

Nothing is stored beyond the short-lived duplicate claim.
*/
package contact

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/taibuivan/nolfolio/internal/platform/validate"
)

// # Field Identifiers

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxSubjectLen = 200
	maxMessageLen = 5000
)

// StatusSent is the only status a successful submission reports.
const StatusSent = "sent"

// # Domain Entities

// Submission is one contact form post. Subject is optional.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Receipt acknowledges a relayed submission.
type Receipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// normalized trims surrounding whitespace from every field.
func (s Submission) normalized() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate returns a VALIDATION_ERROR listing every failing field.
func (s Submission) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldName, s.Name).MaxLen(FieldName, s.Name, maxNameLen)

	validator.Required(FieldEmail, s.Email).MaxLen(FieldEmail, s.Email, maxEmailLen)
	if s.Email != "" {
		validator.Email(FieldEmail, s.Email)
	}

	validator.MaxLen(FieldSubject, s.Subject, maxSubjectLen)
	validator.Required(FieldMessage, s.Message).MaxLen(FieldMessage, s.Message, maxMessageLen)

	return validator.Err()
}

// fingerprint identifies a sender and message pair, ignoring email case.
func (s Submission) fingerprint() string {
	sum := sha256.Sum256([]byte(strings.ToLower(s.Email) + "\n" + s.Message))
	return hex.EncodeToString(sum[:])
}
