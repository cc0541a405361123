package handler

import (
	"net/http"

	"github.com/varmintworks/varmint-server/internal/account"
	"github.com/varmintworks/varmint-server/internal/logger"
	"github.com/varmintworks/varmint-server/internal/progress"
)

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,max=64"`
	Credential string `json:"credential" validate:"required,max=256"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username   string `json:"username" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

// HandleRegister handles account creation. The response is the freshly
// seeded aggregate, so the client boots straight into an empty save
// without a second fetch. The credential never serializes.
func HandleRegister(accountService account.Service, progressService progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		created, err := accountService.Register(r.Context(), req.Username, req.Credential)
		if err != nil {
			log.Warn("Registration rejected", "username", req.Username, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		aggregate, err := progressService.Fetch(r.Context(), created.ID)
		if err != nil {
			log.Error("Failed to fetch aggregate after registration", "account_id", created.ID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, aggregate)
	}
}

// HandleLogin handles credential checks. Unknown usernames and wrong
// credentials produce distinct statuses (404 vs 401); the client shows a
// different prompt for each. Success returns the full aggregate.
func HandleLogin(accountService account.Service, progressService progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		authed, err := accountService.Authenticate(r.Context(), req.Username, req.Credential)
		if err != nil {
			log.Debug("Login rejected", "username", req.Username)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		aggregate, err := progressService.Fetch(r.Context(), authed.ID)
		if err != nil {
			log.Error("Failed to fetch aggregate after login", "account_id", authed.ID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, aggregate)
	}
}
