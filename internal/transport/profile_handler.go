package transport

import (
	"net/http"

	"profile-service/internal/middleware"
	"profile-service/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers all profile routes. Owner operations require a
// resolved identity; the stats endpoint additionally requires the admin role.
func (h *ProfileHandler) RegisterRoutes(r chi.Router, identity func(http.Handler) http.Handler) {
	r.Route("/api/profiles", func(r chi.Router) {
		// Public routes
		r.Get("/public", h.GetPublicProfiles)
		r.Get("/search", h.SearchProfiles)
		r.Get("/location/{location}", h.GetProfilesByLocation)
		r.Get("/{profileId}", h.GetProfileByID)

		// Owner routes
		r.Group(func(r chi.Router) {
			r.Use(identity)
			r.Post("/", h.CreateProfile)
			r.Put("/", h.UpdateProfile)
			r.Delete("/", h.DeleteProfile)
			r.Get("/me", h.GetMyProfile)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(identity)
			r.Use(middleware.RequireAdmin(h.logger))
			r.Get("/stats", h.GetProfileStats)
		})
	})
}

// CreateProfile handles profile creation for the authenticated user
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.CreateProfileRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	render(w, h.profileService.CreateProfile(r.Context(), userID, req))
}

// UpdateProfile handles partial-patch profile updates
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.UpdateProfileRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	render(w, h.profileService.UpdateProfile(r.Context(), userID, req))
}

// GetMyProfile handles the owner view of the caller's profile
func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	render(w, h.profileService.GetMyProfile(r.Context(), userID))
}

// GetProfileByID handles the public view of any profile
func (h *ProfileHandler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	profileID, ok := pathID(w, r, "profileId")
	if !ok {
		return
	}

	render(w, h.profileService.GetProfileByID(r.Context(), profileID))
}

// GetPublicProfiles handles listing all visible profiles
func (h *ProfileHandler) GetPublicProfiles(w http.ResponseWriter, r *http.Request) {
	render(w, h.profileService.GetPublicProfiles(r.Context()))
}

// SearchProfiles handles name search over visible profiles. An empty term is
// rejected here; the service assumes it was pre-checked.
func (h *ProfileHandler) SearchProfiles(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "search term is required")
		return
	}

	render(w, h.profileService.SearchProfiles(r.Context(), term))
}

// GetProfilesByLocation handles the exact-location listing
func (h *ProfileHandler) GetProfilesByLocation(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	render(w, h.profileService.GetProfilesByLocation(r.Context(), location))
}

// DeleteProfile handles soft-deleting the caller's profile
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	render(w, h.profileService.DeleteProfile(r.Context(), userID))
}

// GetProfileStats handles the admin-only aggregate
func (h *ProfileHandler) GetProfileStats(w http.ResponseWriter, r *http.Request) {
	render(w, h.profileService.GetProfileStats(r.Context()))
}
