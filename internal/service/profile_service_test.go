package service

import (
	"context"
	"testing"

	"profile-service/internal/envelope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProfileFixture() (*fakeProfileRepo, ProfileService) {
	profiles := newFakeProfileRepo()
	return profiles, NewProfileService(profiles, zap.NewNop())
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateProfile(t *testing.T) {
	_, svc := newProfileFixture()
	userID := uuid.New()

	env := svc.CreateProfile(context.Background(), userID, CreateProfileRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.True(t, env.Success)
	assert.Equal(t, envelope.StatusCreated, env.Status)
	resp, ok := env.Data.(ProfileResponse)
	require.True(t, ok)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, "Ada Lovelace", resp.FullName)
	// Defaults when the request is silent
	assert.True(t, resp.IsPublic)
	assert.True(t, resp.IsActive)
}

func TestCreateProfile_SecondProfileConflicts(t *testing.T) {
	_, svc := newProfileFixture()
	userID := uuid.New()
	ctx := context.Background()

	require.True(t, svc.CreateProfile(ctx, userID, CreateProfileRequest{FirstName: "Ada"}).Success)

	env := svc.CreateProfile(ctx, userID, CreateProfileRequest{FirstName: "Ada Again"})

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusConflict, env.Status)
}

func TestCreateProfile_ExplicitPrivateIsKept(t *testing.T) {
	_, svc := newProfileFixture()

	env := svc.CreateProfile(context.Background(), uuid.New(), CreateProfileRequest{
		FirstName: "Ada",
		IsPublic:  boolPtr(false),
	})

	require.True(t, env.Success)
	assert.False(t, env.Data.(ProfileResponse).IsPublic)
}

func TestUpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	_, svc := newProfileFixture()
	userID := uuid.New()
	ctx := context.Background()

	created := svc.CreateProfile(ctx, userID, CreateProfileRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Bio:       "mathematician",
		Location:  "London",
	})
	require.True(t, created.Success)

	env := svc.UpdateProfile(ctx, userID, UpdateProfileRequest{
		Bio:      strPtr("analyst"),
		Location: strPtr("Berlin"),
	})

	require.True(t, env.Success)
	resp := env.Data.(ProfileResponse)
	assert.Equal(t, "analyst", resp.Bio)
	assert.Equal(t, "Berlin", resp.Location)
	// Absent fields stay untouched
	assert.Equal(t, "Ada", resp.FirstName)
	assert.Equal(t, "Lovelace", resp.LastName)
}

func TestUpdateProfile_NoProfileIsNotFound(t *testing.T) {
	_, svc := newProfileFixture()

	env := svc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileRequest{Bio: strPtr("x")})

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusNotFound, env.Status)
}

func TestGetMyProfile_ReturnsOwnerViewEvenWhenPrivate(t *testing.T) {
	_, svc := newProfileFixture()
	userID := uuid.New()
	ctx := context.Background()

	require.True(t, svc.CreateProfile(ctx, userID, CreateProfileRequest{
		FirstName: "Ada",
		Phone:     "12345",
		IsPublic:  boolPtr(false),
	}).Success)

	env := svc.GetMyProfile(ctx, userID)

	require.True(t, env.Success)
	resp, ok := env.Data.(ProfileResponse)
	require.True(t, ok)
	assert.Equal(t, "12345", resp.Phone)
	assert.False(t, resp.IsPublic)
}

func TestGetProfileByID_PrivateProfileIsForbidden(t *testing.T) {
	_, svc := newProfileFixture()
	ctx := context.Background()

	created := svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{
		FirstName: "Ada",
		IsPublic:  boolPtr(false),
	})
	require.True(t, created.Success)
	profileID := created.Data.(ProfileResponse).ID

	env := svc.GetProfileByID(ctx, profileID)

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusForbidden, env.Status)
	assert.Equal(t, msgProfilePrivate, env.Message)
}

func TestGetProfileByID_MissingIsNotFound(t *testing.T) {
	_, svc := newProfileFixture()

	env := svc.GetProfileByID(context.Background(), uuid.New())

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusNotFound, env.Status)
}

func TestGetProfileByID_ServesRestrictedView(t *testing.T) {
	_, svc := newProfileFixture()
	ctx := context.Background()

	created := svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{
		FirstName: "Ada",
		Phone:     "12345",
	})
	require.True(t, created.Success)
	profileID := created.Data.(ProfileResponse).ID

	env := svc.GetProfileByID(ctx, profileID)

	require.True(t, env.Success)
	_, isPublicView := env.Data.(PublicProfileResponse)
	assert.True(t, isPublicView)
}

func TestDeleteProfile_SoftDeletesAndHidesFromListings(t *testing.T) {
	profiles, svc := newProfileFixture()
	userID := uuid.New()
	ctx := context.Background()

	created := svc.CreateProfile(ctx, userID, CreateProfileRequest{FirstName: "Ada"})
	require.True(t, created.Success)
	profileID := created.Data.(ProfileResponse).ID

	env := svc.DeleteProfile(ctx, userID)
	require.True(t, env.Success)
	assert.Equal(t, envelope.KindNone, env.Kind)

	// The row survives with the active flag cleared
	stored := profiles.profiles[profileID]
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)

	listed := svc.GetPublicProfiles(ctx)
	require.True(t, listed.Success)
	assert.Empty(t, listed.Data.([]PublicProfileResponse))
}

func TestSearchProfiles_OnlyVisibleProfilesMatch(t *testing.T) {
	_, svc := newProfileFixture()
	ctx := context.Background()

	require.True(t, svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{FirstName: "Ada"}).Success)
	require.True(t, svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{
		FirstName: "Adaline",
		IsPublic:  boolPtr(false),
	}).Success)

	env := svc.SearchProfiles(ctx, "Ada")

	require.True(t, env.Success)
	matches := env.Data.([]PublicProfileResponse)
	require.Len(t, matches, 1)
	assert.Equal(t, "Ada", matches[0].FirstName)
}

func TestGetProfilesByLocation(t *testing.T) {
	_, svc := newProfileFixture()
	ctx := context.Background()

	require.True(t, svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{FirstName: "Ada", Location: "Berlin"}).Success)
	require.True(t, svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{FirstName: "Grace", Location: "Paris"}).Success)

	env := svc.GetProfilesByLocation(ctx, "Berlin")

	require.True(t, env.Success)
	matches := env.Data.([]PublicProfileResponse)
	require.Len(t, matches, 1)
	assert.Equal(t, "Ada", matches[0].FirstName)
}

func TestGetProfileStats(t *testing.T) {
	_, svc := newProfileFixture()
	ctx := context.Background()

	require.True(t, svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{FirstName: "Ada"}).Success)
	require.True(t, svc.CreateProfile(ctx, uuid.New(), CreateProfileRequest{
		FirstName: "Grace",
		IsPublic:  boolPtr(false),
	}).Success)
	deletedUser := uuid.New()
	require.True(t, svc.CreateProfile(ctx, deletedUser, CreateProfileRequest{FirstName: "Alan"}).Success)
	require.True(t, svc.DeleteProfile(ctx, deletedUser).Success)

	env := svc.GetProfileStats(ctx)

	require.True(t, env.Success)
	assert.Equal(t, envelope.KindStats, env.Kind)
	stats, ok := env.Data.(ProfileStats)
	require.True(t, ok)
	assert.Equal(t, int64(2), stats.TotalActive)
	assert.Equal(t, int64(1), stats.Public)
	assert.Equal(t, int64(1), stats.Private)
}

func TestProfileService_StoreFailureIsNotLeaked(t *testing.T) {
	profiles, svc := newProfileFixture()
	profiles.err = assert.AnError

	env := svc.GetProfileStats(context.Background())

	assert.False(t, env.Success)
	assert.Equal(t, envelope.StatusInternalError, env.Status)
	assert.Equal(t, msgInternalError, env.Message)
}
