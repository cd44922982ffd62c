package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"profile-service/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("user already has a profile")
)

const profileColumns = `
	id, user_id, first_name, last_name, bio, phone, avatar_url,
	location, birth_date, website, is_public, is_active, created_at, updated_at
`

// ProfileRepository defines the interface for profile data access. The
// listing queries apply the visibility predicate (public AND active) in the
// store so no hidden profile ever reaches the service layer.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	FindPublicProfiles(ctx context.Context) ([]*domain.Profile, error)
	SearchProfiles(ctx context.Context, term string) ([]*domain.Profile, error)
	FindByLocation(ctx context.Context, location string) ([]*domain.Profile, error)
	CountActiveProfiles(ctx context.Context) (int64, error)
}

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new instance of ProfileRepository
func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a new profile. The unique constraint on user_id makes the
// one-profile-per-user check atomic with the insert.
func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := fmt.Sprintf(`
		INSERT INTO profiles (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, profileColumns)

	_, err := r.db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.UserID,
		profile.FirstName,
		profile.LastName,
		profile.Bio,
		profile.Phone,
		profile.AvatarURL,
		profile.Location,
		profile.BirthDate,
		profile.Website,
		profile.IsPublic,
		profile.IsActive,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return ErrProfileAlreadyExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// Update writes back the full profile row; field-level merge semantics live
// in the service layer.
func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $2, last_name = $3, bio = $4, phone = $5,
		    avatar_url = $6, location = $7, birth_date = $8, website = $9,
		    is_public = $10, is_active = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.FirstName,
		profile.LastName,
		profile.Bio,
		profile.Phone,
		profile.AvatarURL,
		profile.Location,
		profile.BirthDate,
		profile.Website,
		profile.IsPublic,
		profile.IsActive,
		profile.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// FindByID retrieves a profile by its own ID
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)
	return r.findOne(ctx, query, id)
}

// FindByUserID retrieves the single profile owned by a user
func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, profileColumns)
	return r.findOne(ctx, query, userID)
}

func (r *profileRepository) findOne(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// FindPublicProfiles lists all profiles that are both public and active
func (r *profileRepository) FindPublicProfiles(ctx context.Context) ([]*domain.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles
		WHERE is_public = TRUE AND is_active = TRUE
		ORDER BY created_at DESC
	`, profileColumns)

	return r.queryMany(ctx, query)
}

// SearchProfiles matches a case-sensitive substring against first or last
// name, restricted to visible profiles.
func (r *profileRepository) SearchProfiles(ctx context.Context, term string) ([]*domain.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles
		WHERE (first_name LIKE '%%' || $1 || '%%' OR last_name LIKE '%%' || $1 || '%%')
		  AND is_public = TRUE AND is_active = TRUE
		ORDER BY created_at DESC
	`, profileColumns)

	return r.queryMany(ctx, query, term)
}

// FindByLocation matches the location exactly, restricted to visible profiles
func (r *profileRepository) FindByLocation(ctx context.Context, location string) ([]*domain.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles
		WHERE location = $1 AND is_public = TRUE AND is_active = TRUE
		ORDER BY created_at DESC
	`, profileColumns)

	return r.queryMany(ctx, query, location)
}

// CountActiveProfiles counts profiles that have not been soft-deleted
func (r *profileRepository) CountActiveProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active profiles: %w", err)
	}
	return count, nil
}

func (r *profileRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*domain.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var (
		firstName, lastName, bio, phone sql.NullString
		avatarURL, location, website    sql.NullString
		birthDate                       sql.NullTime
	)

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&firstName,
		&lastName,
		&bio,
		&phone,
		&avatarURL,
		&location,
		&birthDate,
		&website,
		&profile.IsPublic,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.FirstName = firstName.String
	profile.LastName = lastName.String
	profile.Bio = bio.String
	profile.Phone = phone.String
	profile.AvatarURL = avatarURL.String
	profile.Location = location.String
	profile.Website = website.String
	if birthDate.Valid {
		t := birthDate.Time
		profile.BirthDate = &t
	}

	return profile, nil
}
