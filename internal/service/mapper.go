package service

import (
	"time"

	"profile-service/internal/domain"

	"github.com/google/uuid"
)

// Pure request/entity/response conversions. Nothing here touches the store;
// system-assigned fields (ids, timestamps, flags) are set by the services.

func toCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func toCategoryResponses(categories []*domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	return responses
}

func newProductFromRequest(req ProductRequest, category *domain.Category, now time.Time) *domain.Product {
	return &domain.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		CategoryID:  category.ID,
		Category:    *category,
		Stock:       req.Stock,
		Sku:         req.Sku,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// applyProductRequest overwrites every mutable field: product updates are
// full-replace, not partial patch.
func applyProductRequest(product *domain.Product, req ProductRequest, category *domain.Category, now time.Time) {
	product.Name = req.Name
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.Price = req.Price
	product.CategoryID = category.ID
	product.Category = *category
	product.Stock = req.Stock
	product.Sku = req.Sku
	product.UpdatedAt = now
}

func toProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Price:       product.Price,
		Category:    toCategoryResponse(&product.Category),
		Stock:       product.Stock,
		Sku:         product.Sku,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductResponses(products []*domain.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses
}

func newProfileFromRequest(userID uuid.UUID, req CreateProfileRequest, now time.Time) *domain.Profile {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	return &domain.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		Location:  req.Location,
		BirthDate: req.BirthDate,
		Website:   req.Website,
		IsPublic:  isPublic,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// applyProfileUpdate merges only the non-nil request fields into the profile:
// profile updates are partial patch, in contrast with product updates.
func applyProfileUpdate(profile *domain.Profile, req UpdateProfileRequest, now time.Time) {
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.BirthDate != nil {
		profile.BirthDate = req.BirthDate
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}
	profile.UpdatedAt = now
}

func toProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID,
		UserID:    profile.UserID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		FullName:  profile.FullName(),
		Bio:       profile.Bio,
		Phone:     profile.Phone,
		AvatarURL: profile.AvatarURL,
		Location:  profile.Location,
		BirthDate: profile.BirthDate,
		Website:   profile.Website,
		IsPublic:  profile.IsPublic,
		IsActive:  profile.IsActive,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

func toPublicProfileResponse(profile *domain.Profile) PublicProfileResponse {
	return PublicProfileResponse{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		FullName:  profile.FullName(),
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
		Location:  profile.Location,
		Website:   profile.Website,
		CreatedAt: profile.CreatedAt,
	}
}

func toPublicProfileResponses(profiles []*domain.Profile) []PublicProfileResponse {
	responses := make([]PublicProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, toPublicProfileResponse(profile))
	}
	return responses
}
