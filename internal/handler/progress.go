package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/varmintworks/varmint-server/internal/logger"
	"github.com/varmintworks/varmint-server/internal/progress"
)

// accountIDParam extracts the accountID route parameter. A non-numeric id
// can never match a stored account, so it reports not-found rather than
// bad-request.
func accountIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// HandleGetProgress returns the full game state aggregate for one account
func HandleGetProgress(progressService progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		accountID, ok := accountIDParam(r)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgUserNotFoundError)
			return
		}

		agg, err := progressService.Fetch(r.Context(), accountID)
		if err != nil {
			log.Warn("Failed to fetch progress", "account_id", accountID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, agg)
	}
}

// HandleUpdateProgress reconciles a client save into stored state and
// returns the post-commit aggregate
func HandleUpdateProgress(progressService progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		accountID, ok := accountIDParam(r)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgUserNotFoundError)
			return
		}

		var patch progress.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Error("Failed to decode progress update", "account_id", accountID, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		agg, err := progressService.Update(r.Context(), accountID, &patch)
		if err != nil {
			log.Error("Failed to apply progress update", "account_id", accountID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, agg)
	}
}

// DeleteHomeObjectResponse echoes what was removed and for whom
type DeleteHomeObjectResponse struct {
	Message    string `json:"message"`
	DeletedID  int64  `json:"deletedId"`
	ProgressID int64  `json:"progressId"`
}

// HandleDeleteHomeObject removes one placed home object by id
func HandleDeleteHomeObject(progressService progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		homeObjectID, err := strconv.ParseInt(chi.URLParam(r, "homeObjectID"), 10, 64)
		if err != nil {
			respondError(w, http.StatusNotFound, ErrMsgHomeObjectNotFoundError)
			return
		}

		ownerID, err := progressService.DeleteHomeObject(r.Context(), homeObjectID)
		if err != nil {
			log.Warn("Failed to delete home object", "home_object_id", homeObjectID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DeleteHomeObjectResponse{
			Message:    MsgObjectDeletedSuccess,
			DeletedID:  homeObjectID,
			ProgressID: ownerID,
		})
	}
}
