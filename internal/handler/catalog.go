package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/varmintworks/varmint-server/internal/catalog"
	"github.com/varmintworks/varmint-server/internal/logger"
)

// HandleListItems returns the full item catalog
func HandleListItems(catalogService catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		items, err := catalogService.ListItems(r.Context())
		if err != nil {
			log.Error("Failed to list items", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one catalog item by id
func HandleGetItem(catalogService catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		item, err := catalogService.GetItem(r.Context(), itemID)
		if err != nil {
			log.Debug("Item lookup failed", "item_id", itemID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}
