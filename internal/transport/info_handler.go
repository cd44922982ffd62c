package transport

import (
	"errors"
	"net/http"

	"profile-service/internal/client"
	"profile-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InfoHandler exposes user lookups proxied to the identity service
type InfoHandler struct {
	identity *client.IdentityClient
	logger   *zap.Logger
}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler(identity *client.IdentityClient, logger *zap.Logger) *InfoHandler {
	return &InfoHandler{
		identity: identity,
		logger:   logger,
	}
}

// RegisterRoutes registers the info routes
func (h *InfoHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/info/{email}", h.GetUserByEmail)
}

// GetUserByEmail looks up a user in the identity service by email
func (h *InfoHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.identity.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, client.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("identity lookup failed", zap.String("email", email), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, user)
}
