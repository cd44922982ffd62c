package service

import (
	"context"
	"errors"
	"time"

	"profile-service/internal/envelope"
	"profile-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgProfileNotFound = "profile not found"
	msgProfileExists   = "user already has a profile"
	msgProfilePrivate  = "profile is private"
)

// ProfileService enforces one-profile-per-user, visibility rules on reads
// and soft-delete semantics. Profiles are never hard-deleted.
type ProfileService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) envelope.Envelope
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) envelope.Envelope
	GetMyProfile(ctx context.Context, userID uuid.UUID) envelope.Envelope
	GetProfileByID(ctx context.Context, profileID uuid.UUID) envelope.Envelope
	GetPublicProfiles(ctx context.Context) envelope.Envelope
	SearchProfiles(ctx context.Context, term string) envelope.Envelope
	GetProfilesByLocation(ctx context.Context, location string) envelope.Envelope
	DeleteProfile(ctx context.Context, userID uuid.UUID) envelope.Envelope
	GetProfileStats(ctx context.Context) envelope.Envelope
}

type profileService struct {
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profiles repository.ProfileRepository, logger *zap.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		logger:   logger,
	}
}

// CreateProfile persists a profile for a user that has none. The service
// forces IsActive on; the store's unique user_id constraint closes the race
// between the existence check and the insert.
func (s *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) envelope.Envelope {
	_, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return envelope.Fail(envelope.StatusConflict, msgProfileExists)
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return s.internalError("check existing profile", err)
	}

	profile := newProfileFromRequest(userID, req, time.Now().UTC())

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileAlreadyExists) {
			return envelope.Fail(envelope.StatusConflict, msgProfileExists)
		}
		return s.internalError("create profile", err)
	}

	return envelope.Created(toProfileResponse(profile), "profile created successfully")
}

// UpdateProfile applies partial-patch semantics: only non-nil request fields
// overwrite the stored profile.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) envelope.Envelope {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProfileNotFound)
		}
		return s.internalError("find profile", err)
	}

	applyProfileUpdate(profile, req, time.Now().UTC())

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProfileNotFound)
		}
		return s.internalError("update profile", err)
	}

	return envelope.OK(toProfileResponse(profile), "profile updated successfully")
}

// GetMyProfile is the owner view: the full representation is returned
// regardless of the is_public flag.
func (s *profileService) GetMyProfile(ctx context.Context, userID uuid.UUID) envelope.Envelope {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProfileNotFound)
		}
		return s.internalError("find profile", err)
	}

	return envelope.OK(toProfileResponse(profile), "profile retrieved successfully")
}

// GetProfileByID is the public view. A private profile reports Forbidden even
// when it exists and is active; the visibility check is independent of the
// active flag.
func (s *profileService) GetProfileByID(ctx context.Context, profileID uuid.UUID) envelope.Envelope {
	profile, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProfileNotFound)
		}
		return s.internalError("find profile", err)
	}

	if !profile.IsPublic {
		return envelope.Fail(envelope.StatusForbidden, msgProfilePrivate)
	}

	return envelope.OK(toPublicProfileResponse(profile), "profile retrieved successfully")
}

// GetPublicProfiles lists every profile that is both public and active
func (s *profileService) GetPublicProfiles(ctx context.Context) envelope.Envelope {
	profiles, err := s.profiles.FindPublicProfiles(ctx)
	if err != nil {
		return s.internalError("list public profiles", err)
	}

	return envelope.OKList(toPublicProfileResponses(profiles), "public profiles retrieved successfully")
}

// SearchProfiles matches the term against first or last name over visible
// profiles. An empty term is a caller error pre-checked at the boundary.
func (s *profileService) SearchProfiles(ctx context.Context, term string) envelope.Envelope {
	profiles, err := s.profiles.SearchProfiles(ctx, term)
	if err != nil {
		return s.internalError("search profiles", err)
	}

	return envelope.OKList(toPublicProfileResponses(profiles), "profile search completed")
}

// GetProfilesByLocation lists visible profiles with an exact location match
func (s *profileService) GetProfilesByLocation(ctx context.Context, location string) envelope.Envelope {
	profiles, err := s.profiles.FindByLocation(ctx, location)
	if err != nil {
		return s.internalError("list profiles by location", err)
	}

	return envelope.OKList(toPublicProfileResponses(profiles), "profiles by location retrieved successfully")
}

// DeleteProfile soft-deletes: the active flag is cleared and the row stays,
// keeping the profile recoverable.
func (s *profileService) DeleteProfile(ctx context.Context, userID uuid.UUID) envelope.Envelope {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProfileNotFound)
		}
		return s.internalError("find profile", err)
	}

	profile.IsActive = false
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return envelope.Fail(envelope.StatusNotFound, msgProfileNotFound)
		}
		return s.internalError("deactivate profile", err)
	}

	return envelope.Empty("profile deleted successfully")
}

// GetProfileStats derives the active/public/private counts on read
func (s *profileService) GetProfileStats(ctx context.Context) envelope.Envelope {
	active, err := s.profiles.CountActiveProfiles(ctx)
	if err != nil {
		return s.internalError("count active profiles", err)
	}

	publicProfiles, err := s.profiles.FindPublicProfiles(ctx)
	if err != nil {
		return s.internalError("list public profiles", err)
	}

	public := int64(len(publicProfiles))
	stats := ProfileStats{
		TotalActive: active,
		Public:      public,
		Private:     active - public,
	}

	return envelope.Stats(stats, "profile statistics retrieved successfully")
}

func (s *profileService) internalError(op string, err error) envelope.Envelope {
	s.logger.Error("profile operation failed",
		zap.String("op", op),
		zap.Error(err),
	)
	return envelope.Fail(envelope.StatusInternalError, msgInternalError)
}
