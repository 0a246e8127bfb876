package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"swoon/internal/models/db_models"
	"swoon/internal/models/response_models"
	"swoon/internal/repositories"
	mem "swoon/pkg/memcache"
	"swoon/pkg/utils"
)

type ShortlistServiceInterface interface {
	Toggle(ctx context.Context, userID uuid.UUID, venueID string) (response_models.ToggleShortlistResponse, error)
	List(ctx context.Context, userID uuid.UUID, sortMode string, page, pageSize int) ([]response_models.ShortlistItem, error)
}

type ShortlistService struct {
	shortlistRepo repositories.ShortlistRepositoryInterface
	venueRepo     repositories.VenueRepositoryInterface
	profileRepo   repositories.ProfileRepositoryInterface
	embeddings    EmbeddingServiceInterface
	sessionCache  mem.SessionCacheInterface
}

func NewShortlistService(
	shortlistRepo repositories.ShortlistRepositoryInterface,
	venueRepo repositories.VenueRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	embeddings EmbeddingServiceInterface,
	sessionCache mem.SessionCacheInterface,
) ShortlistServiceInterface {
	return &ShortlistService{
		shortlistRepo: shortlistRepo,
		venueRepo:     venueRepo,
		profileRepo:   profileRepo,
		embeddings:    embeddings,
		sessionCache:  sessionCache,
	}
}

// Toggle saves the venue with a taste-score snapshot, or removes it when
// already saved. The snapshot freezes "sort by taste score" for this entry
// so later profile refines do not reshuffle the shortlist.
func (s *ShortlistService) Toggle(ctx context.Context, userID uuid.UUID, venueID string) (response_models.ToggleShortlistResponse, error) {
	vid, err := uuid.Parse(venueID)
	if err != nil {
		return response_models.ToggleShortlistResponse{}, utils.ErrVenueNotFound
	}

	venue, err := s.venueRepo.GetByID(ctx, vid)
	if err != nil {
		log.Printf("Error fetching venue for shortlist: %v", err)
		return response_models.ToggleShortlistResponse{}, utils.ErrDatabaseError
	}
	if venue == nil {
		return response_models.ToggleShortlistResponse{}, utils.ErrVenueNotFound
	}

	existing, err := s.shortlistRepo.Get(ctx, userID, vid)
	if err != nil {
		log.Printf("Error checking shortlist entry: %v", err)
		return response_models.ToggleShortlistResponse{}, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.shortlistRepo.Delete(ctx, userID, vid); err != nil {
			log.Printf("Error removing shortlist entry: %v", err)
			return response_models.ToggleShortlistResponse{}, utils.ErrDatabaseError
		}
		// The discovery feed excludes shortlisted venues, so its cached
		// exclusion set is stale now.
		s.sessionCache.Invalidate(userID.String(), db_models.SessionDiscovery)
		return response_models.ToggleShortlistResponse{Shortlisted: false}, nil
	}

	score := s.snapshotScore(ctx, userID, vid)
	entry := &db_models.ShortlistEntry{
		UserID:             userID,
		VenueID:            vid,
		SavedAt:            time.Now(),
		TasteScoreSnapshot: score,
	}
	if err := s.shortlistRepo.Create(ctx, entry); err != nil {
		log.Printf("Error saving shortlist entry: %v", err)
		return response_models.ToggleShortlistResponse{}, utils.ErrDatabaseError
	}
	s.sessionCache.Invalidate(userID.String(), db_models.SessionDiscovery)

	return response_models.ToggleShortlistResponse{
		Shortlisted: true,
		TasteScore:  &score,
	}, nil
}

func (s *ShortlistService) List(ctx context.Context, userID uuid.UUID, sortMode string, page, pageSize int) ([]response_models.ShortlistItem, error) {
	entries, err := s.shortlistRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing shortlist: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if len(entries) == 0 {
		return []response_models.ShortlistItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.VenueID)
	}
	venues, err := s.venueRepo.ListByIDs(ctx, ids)
	if err != nil {
		log.Printf("Error loading shortlisted venues: %v", err)
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[uuid.UUID]db_models.Venue, len(venues))
	for _, venue := range venues {
		byID[venue.ID] = venue
	}

	candidates := make([]VenueCandidate, 0, len(entries))
	snapshots := make(map[string]db_models.ShortlistEntry, len(entries))
	for _, entry := range entries {
		venue, ok := byID[entry.VenueID]
		if !ok {
			continue
		}
		score := entry.TasteScoreSnapshot
		candidates = append(candidates, VenueCandidate{
			ID:           venue.ID.String(),
			Name:         venue.Name,
			PricingTier:  venue.PricingTier,
			IsEstate:     venue.IsEstate,
			IsHistoric:   venue.IsHistoric,
			HasLodging:   venue.HasLodging,
			HasGarden:    venue.HasGarden,
			IsWaterfront: venue.IsWaterfront,
			TasteScore:   &score,
			SavedAt:      entry.SavedAt,
		})
		snapshots[venue.ID.String()] = entry
	}

	// The snapshot scores are already on the candidates; the profile
	// vector is only a fallback trigger, so pass a placeholder when
	// sorting by taste score.
	var profileVector []float32
	if sortMode == SortTasteScore {
		profileVector = []float32{}
	}
	ranked, _, err := RankVenues(candidates, VenueFilter{}, sortMode, page, pageSize, profileVector)
	if err != nil {
		return nil, err
	}

	items := make([]response_models.ShortlistItem, 0, len(ranked))
	for _, c := range ranked {
		entry := snapshots[c.ID]
		resp := venueResponse(byID[entry.VenueID])
		resp.TasteScore = c.TasteScore
		resp.ShortlistedNow = true
		items = append(items, response_models.ShortlistItem{
			Venue:      resp,
			SavedAt:    entry.SavedAt,
			TasteScore: entry.TasteScoreSnapshot,
		})
	}
	return items, nil
}

// snapshotScore is best-effort: a missing profile or embedding simply
// snapshots 0.
func (s *ShortlistService) snapshotScore(ctx context.Context, userID, venueID uuid.UUID) float64 {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil || profile == nil {
		return 0
	}
	vec, err := s.embeddings.GetVenueEmbedding(ctx, venueID.String())
	if err != nil || vec == nil {
		return 0
	}
	score, err := s.embeddings.Similarity(profile.Embedding.Slice(), vec)
	if err != nil {
		return 0
	}
	return score
}
