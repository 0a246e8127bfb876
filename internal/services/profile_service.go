package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"swoon/internal/models/db_models"
	"swoon/internal/models/response_models"
	"swoon/internal/repositories"
	"swoon/pkg/utils"
)

type ProfileServiceInterface interface {
	GetCurrentProfile(ctx context.Context, userID uuid.UUID) (response_models.TasteProfile, error)
	Regenerate(ctx context.Context, userID uuid.UUID) (response_models.TasteProfile, error)
}

type ProfileService struct {
	profileRepo  repositories.ProfileRepositoryInterface
	swipeRepo    repositories.SwipeRepositoryInterface
	venueRepo    repositories.VenueRepositoryInterface
	embeddings   EmbeddingServiceInterface
	buildOptions ProfileBuildOptions
}

func NewProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	swipeRepo repositories.SwipeRepositoryInterface,
	venueRepo repositories.VenueRepositoryInterface,
	embeddings EmbeddingServiceInterface,
) ProfileServiceInterface {
	return &ProfileService{
		profileRepo:  profileRepo,
		swipeRepo:    swipeRepo,
		venueRepo:    venueRepo,
		embeddings:   embeddings,
		buildOptions: DefaultProfileBuildOptions,
	}
}

func (p *ProfileService) GetCurrentProfile(ctx context.Context, userID uuid.UUID) (response_models.TasteProfile, error) {
	profile, err := p.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching taste profile: %v", err)
		return response_models.TasteProfile{}, utils.ErrDatabaseError
	}
	if profile == nil {
		return response_models.TasteProfile{}, utils.ErrProfileNotFound
	}
	return profileResponse(profile), nil
}

// Regenerate folds every live swipe decision into a fresh profile and
// replaces the stored one atomically. Called once when onboarding finishes
// and again on every explicit "refine" after discovery swiping.
func (p *ProfileService) Regenerate(ctx context.Context, userID uuid.UUID) (response_models.TasteProfile, error) {
	events, err := p.swipeRepo.ListEffective(ctx, userID)
	if err != nil {
		log.Printf("Error loading swipe history: %v", err)
		return response_models.TasteProfile{}, utils.ErrDatabaseError
	}

	var likedIDs, skippedIDs []uuid.UUID
	for _, e := range events {
		if e.Decision == db_models.DecisionLike {
			likedIDs = append(likedIDs, e.VenueID)
		} else {
			skippedIDs = append(skippedIDs, e.VenueID)
		}
	}

	liked, err := p.vectorsFor(ctx, likedIDs)
	if err != nil {
		return response_models.TasteProfile{}, err
	}
	skipped, err := p.vectorsFor(ctx, skippedIDs)
	if err != nil {
		return response_models.TasteProfile{}, err
	}

	likedAttrs, err := p.attributesFor(ctx, likedIDs)
	if err != nil {
		return response_models.TasteProfile{}, err
	}

	var catalogMean []float32
	if len(liked) == 0 {
		catalogMean, err = p.embeddings.CatalogMean(ctx)
		if err != nil {
			return response_models.TasteProfile{}, err
		}
	}

	built, err := BuildTasteProfile(liked, skipped, likedAttrs, catalogMean, p.buildOptions)
	if err != nil {
		log.Printf("Error building taste profile: %v", err)
		return response_models.TasteProfile{}, utils.ErrDimensionMismatch
	}

	profile := &db_models.TasteProfile{
		UserID:           userID,
		Embedding:        pgvector.NewVector(built.Vector),
		Confidence:       built.Confidence,
		DescriptiveWords: built.DescriptiveWords,
		SwipeCount:       len(events),
		GeneratedAt:      time.Now(),
		Undetermined:     built.Undetermined,
	}
	if err := p.profileRepo.Replace(ctx, profile); err != nil {
		log.Printf("Error replacing taste profile: %v", err)
		return response_models.TasteProfile{}, utils.ErrDatabaseError
	}

	return profileResponse(profile), nil
}

// vectorsFor keeps only venues that actually have a stored embedding;
// unembedded likes still count for attributes but not for the centroid.
func (p *ProfileService) vectorsFor(ctx context.Context, venueIDs []uuid.UUID) ([][]float32, error) {
	ids := make([]string, 0, len(venueIDs))
	for _, id := range venueIDs {
		ids = append(ids, id.String())
	}

	vectors := make([][]float32, 0, len(ids))
	for _, id := range ids {
		vec, err := p.embeddings.GetVenueEmbedding(ctx, id)
		if err != nil {
			return nil, err
		}
		if vec != nil {
			vectors = append(vectors, vec)
		}
	}
	return vectors, nil
}

func (p *ProfileService) attributesFor(ctx context.Context, venueIDs []uuid.UUID) ([]LikedVenueAttributes, error) {
	venues, err := p.venueRepo.ListByIDs(ctx, venueIDs)
	if err != nil {
		log.Printf("Error loading liked venues: %v", err)
		return nil, utils.ErrDatabaseError
	}

	attrs := make([]LikedVenueAttributes, 0, len(venues))
	for _, v := range venues {
		attrs = append(attrs, LikedVenueAttributes{
			PricingTier:  v.PricingTier,
			IsEstate:     v.IsEstate,
			IsHistoric:   v.IsHistoric,
			HasLodging:   v.HasLodging,
			HasGarden:    v.HasGarden,
			IsWaterfront: v.IsWaterfront,
		})
	}
	return attrs, nil
}

func profileResponse(profile *db_models.TasteProfile) response_models.TasteProfile {
	return response_models.TasteProfile{
		Confidence:       profile.Confidence,
		DescriptiveWords: profile.DescriptiveWords,
		SwipeCount:       profile.SwipeCount,
		GeneratedAt:      profile.GeneratedAt,
		Undetermined:     profile.Undetermined,
	}
}
