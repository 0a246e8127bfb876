package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"swoon/internal/models/db_models"
	"swoon/internal/models/request_models"
	"swoon/internal/models/response_models"
	"swoon/internal/repositories"
	"swoon/pkg/utils"
)

type VenueServiceInterface interface {
	IngestRecord(ctx context.Context, record request_models.RawVenueRecord) error
	GetVenueByID(ctx context.Context, id string) (response_models.Venue, error)
	SearchVenues(ctx context.Context, userID *uuid.UUID, query request_models.SearchQuery) (response_models.SearchResponse, error)
}

type VenueService struct {
	venueRepo   repositories.VenueRepositoryInterface
	profileRepo repositories.ProfileRepositoryInterface
	embeddings  EmbeddingServiceInterface
	extractor   utils.ExtractionClientInterface
	embedder    utils.EmbeddingClientInterface
}

func NewVenueService(
	venueRepo repositories.VenueRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	embeddings EmbeddingServiceInterface,
	extractor utils.ExtractionClientInterface,
	embedder utils.EmbeddingClientInterface,
) VenueServiceInterface {
	return &VenueService{
		venueRepo:   venueRepo,
		profileRepo: profileRepo,
		embeddings:  embeddings,
		extractor:   extractor,
		embedder:    embedder,
	}
}

// IngestRecord turns one crawled record into a catalog venue: extract
// structured attributes from the raw markdown, upsert the venue keyed on
// its source id, then embed its content. Pages that are not wedding venues
// are kept with the flag off so re-crawls skip re-extraction decisions.
func (v *VenueService) IngestRecord(ctx context.Context, record request_models.RawVenueRecord) error {
	extraction, err := v.extractor.ExtractVenue(ctx, record.RawMarkdown)
	if err != nil {
		log.Printf("Error extracting venue %s: %v", record.SourceID, err)
		return fmt.Errorf("extract venue %s: %w", record.SourceID, err)
	}

	name := extraction.Name
	if name == "" {
		name = record.Name
	}

	venue := &db_models.Venue{
		SourceID:       record.SourceID,
		Name:           name,
		Latitude:       record.Latitude,
		Longitude:      record.Longitude,
		Address:        record.Address,
		Description:    extraction.Description,
		RawMarkdown:    record.RawMarkdown,
		PricingTier:    extraction.PricingTier,
		IsWeddingVenue: extraction.IsWeddingVenue,
		IsEstate:       extraction.IsEstate,
		IsHistoric:     extraction.IsHistoric,
		HasLodging:     extraction.HasLodging,
		HasGarden:      extraction.HasGarden,
		IsWaterfront:   extraction.IsWaterfront,
		LastCrawledAt:  time.Now().Unix(),
	}
	if err := v.venueRepo.Upsert(ctx, venue); err != nil {
		log.Printf("Error upserting venue %s: %v", record.SourceID, err)
		return utils.ErrDatabaseError
	}

	if !venue.IsWeddingVenue {
		return nil
	}

	stored, err := v.venueRepo.GetBySourceID(ctx, record.SourceID)
	if err != nil || stored == nil {
		log.Printf("Error reloading venue %s after upsert: %v", record.SourceID, err)
		return utils.ErrDatabaseError
	}

	vector, err := v.embedder.EmbedText(ctx, name+"\n"+extraction.Description)
	if err != nil {
		log.Printf("Error embedding venue %s: %v", record.SourceID, err)
		return fmt.Errorf("embed venue %s: %w", record.SourceID, err)
	}

	return v.embeddings.PutVenueEmbedding(ctx, stored.ID.String(), name, vector.Slice())
}

func (v *VenueService) GetVenueByID(ctx context.Context, id string) (response_models.Venue, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return response_models.Venue{}, utils.ErrVenueNotFound
	}

	venue, err := v.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return response_models.Venue{}, utils.ErrDatabaseError
	}
	if venue == nil {
		return response_models.Venue{}, utils.ErrVenueNotFound
	}
	return venueResponse(*venue), nil
}

// SearchVenues runs the filter/sort/page triple through the ranking
// engine. When sorting by taste score the caller's profile vector and the
// venue embeddings are loaded first; a missing profile degrades the sort
// to name ordering.
func (v *VenueService) SearchVenues(ctx context.Context, userID *uuid.UUID, query request_models.SearchQuery) (response_models.SearchResponse, error) {
	venues, err := v.venueRepo.ListWeddingVenues(ctx)
	if err != nil {
		log.Printf("Error listing venues: %v", err)
		return response_models.SearchResponse{}, utils.ErrDatabaseError
	}

	candidates := make([]VenueCandidate, 0, len(venues))
	for _, venue := range venues {
		candidates = append(candidates, VenueCandidate{
			ID:           venue.ID.String(),
			Name:         venue.Name,
			PricingTier:  venue.PricingTier,
			IsEstate:     venue.IsEstate,
			IsHistoric:   venue.IsHistoric,
			HasLodging:   venue.HasLodging,
			HasGarden:    venue.HasGarden,
			IsWaterfront: venue.IsWaterfront,
		})
	}

	var profileVector []float32
	if query.Sort == SortTasteScore && userID != nil {
		profile, err := v.profileRepo.GetByUserID(ctx, *userID)
		if err != nil {
			log.Printf("Error fetching profile for search: %v", err)
			return response_models.SearchResponse{}, utils.ErrDatabaseError
		}
		if profile != nil {
			profileVector = profile.Embedding.Slice()

			ids := make([]string, len(candidates))
			for i, c := range candidates {
				ids[i] = c.ID
			}
			vectors, err := v.embeddings.RankBySimilarity(ctx, profileVector, ids, 0)
			if err != nil {
				return response_models.SearchResponse{}, err
			}
			scores := make(map[string]float64, len(vectors))
			for _, s := range vectors {
				scores[s.VenueID] = s.Score
			}
			for i := range candidates {
				if score, ok := scores[candidates[i].ID]; ok {
					s := score
					candidates[i].TasteScore = &s
				}
			}
		}
	}

	filter := VenueFilter{
		PriceTiers:   query.PriceTiers,
		IsEstate:     query.IsEstate,
		IsHistoric:   query.IsHistoric,
		HasLodging:   query.HasLodging,
		HasGarden:    query.HasGarden,
		IsWaterfront: query.IsWaterfront,
	}

	ranked, total, err := RankVenues(candidates, filter, query.Sort, query.Page, query.PageSize, profileVector)
	if err != nil {
		return response_models.SearchResponse{}, err
	}

	byID := make(map[string]db_models.Venue, len(venues))
	for _, venue := range venues {
		byID[venue.ID.String()] = venue
	}

	out := make([]response_models.Venue, 0, len(ranked))
	for _, c := range ranked {
		resp := venueResponse(byID[c.ID])
		resp.TasteScore = c.TasteScore
		out = append(out, resp)
	}

	return response_models.SearchResponse{
		Venues:   out,
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
		Sort:     query.Sort,
	}, nil
}
