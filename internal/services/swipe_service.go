package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"swoon/internal/models/db_models"
	"swoon/internal/models/request_models"
	"swoon/internal/models/response_models"
	"swoon/internal/repositories"
	"swoon/pkg/keylock"
	mem "swoon/pkg/memcache"
	"swoon/pkg/utils"
)

const sessionCacheTTL = 5 * time.Minute

type SwipeServiceInterface interface {
	SubmitSwipe(ctx context.Context, userID uuid.UUID, req request_models.SwipeRequest) error
	UndoSwipe(ctx context.Context, userID uuid.UUID, sessionContext string) error
	GetFeed(ctx context.Context, userID uuid.UUID, sessionContext string, limit int) (response_models.FeedResponse, error)
}

type SwipeService struct {
	swipeRepo     repositories.SwipeRepositoryInterface
	venueRepo     repositories.VenueRepositoryInterface
	shortlistRepo repositories.ShortlistRepositoryInterface
	sessionLocks  *keylock.KeyLock
	sessionCache  mem.SessionCacheInterface
}

func NewSwipeService(
	swipeRepo repositories.SwipeRepositoryInterface,
	venueRepo repositories.VenueRepositoryInterface,
	shortlistRepo repositories.ShortlistRepositoryInterface,
	sessionCache mem.SessionCacheInterface,
) SwipeServiceInterface {
	return &SwipeService{
		swipeRepo:     swipeRepo,
		venueRepo:     venueRepo,
		shortlistRepo: shortlistRepo,
		sessionLocks:  keylock.New(),
		sessionCache:  sessionCache,
	}
}

func sessionKey(userID uuid.UUID, sessionContext string) string {
	return userID.String() + "|" + sessionContext
}

// SubmitSwipe appends one like/skip decision. Swipes for the same
// (user, session) are serialized under a keyed lock so append order is
// causal order; a venue with a live decision must be undone before it can
// be decided again.
func (s *SwipeService) SubmitSwipe(ctx context.Context, userID uuid.UUID, req request_models.SwipeRequest) error {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return utils.ErrVenueNotFound
	}

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		log.Printf("Error fetching venue for swipe: %v", err)
		return utils.ErrDatabaseError
	}
	if venue == nil {
		return utils.ErrVenueNotFound
	}

	key := sessionKey(userID, req.SessionContext)
	s.sessionLocks.Lock(key)
	defer s.sessionLocks.Unlock(key)

	decided, err := s.liveDecisions(ctx, userID, req.SessionContext)
	if err != nil {
		return err
	}
	if _, exists := decided[req.VenueID]; exists {
		return utils.ErrAlreadySwiped
	}

	seq, err := s.swipeRepo.NextSequence(ctx, userID, req.SessionContext)
	if err != nil {
		log.Printf("Error computing swipe sequence: %v", err)
		return utils.ErrDatabaseError
	}

	event := &db_models.SwipeEvent{
		UserID:         userID,
		VenueID:        venueID,
		SessionContext: req.SessionContext,
		Decision:       req.Decision,
		Sequence:       seq,
	}
	if err := s.swipeRepo.Append(ctx, event); err != nil {
		log.Printf("Error appending swipe event: %v", err)
		return utils.ErrDatabaseError
	}

	s.sessionCache.Invalidate(userID.String(), req.SessionContext)
	return nil
}

// UndoSwipe reverts the latest live decision of the session. Undoing with
// an empty history is a no-op, not an error, and undo never crosses
// session boundaries.
func (s *SwipeService) UndoSwipe(ctx context.Context, userID uuid.UUID, sessionContext string) error {
	key := sessionKey(userID, sessionContext)
	s.sessionLocks.Lock(key)
	defer s.sessionLocks.Unlock(key)

	_, err := s.swipeRepo.UndoLatest(ctx, userID, sessionContext)
	if err != nil {
		log.Printf("Error undoing swipe: %v", err)
		return utils.ErrDatabaseError
	}

	s.sessionCache.Invalidate(userID.String(), sessionContext)
	return nil
}

// GetFeed returns the next swipe candidates. Onboarding serves the curated
// seed set; discovery serves the catalog minus already-decided and
// already-shortlisted venues. The exclusion set comes from the session
// snapshot cache when a live entry exists; submit, undo and shortlist
// toggles invalidate it. An empty candidate pool is the exhausted state,
// reported as data rather than an error.
func (s *SwipeService) GetFeed(ctx context.Context, userID uuid.UUID, sessionContext string, limit int) (response_models.FeedResponse, error) {
	var pool []db_models.Venue
	var err error
	if sessionContext == db_models.SessionOnboarding {
		pool, err = s.venueRepo.ListOnboardingSeeds(ctx)
	} else {
		pool, err = s.venueRepo.ListWeddingVenues(ctx)
	}
	if err != nil {
		log.Printf("Error loading feed candidates: %v", err)
		return response_models.FeedResponse{}, utils.ErrDatabaseError
	}

	var excluded map[string]string
	if snap, ok := s.sessionCache.Get(userID.String(), sessionContext); ok {
		excluded = snap.Decided
	} else {
		excluded, err = s.excludedVenues(ctx, userID, sessionContext)
		if err != nil {
			return response_models.FeedResponse{}, err
		}
	}

	venues := make([]response_models.Venue, 0, limit)
	for _, venue := range pool {
		if _, skip := excluded[venue.ID.String()]; skip {
			continue
		}
		venues = append(venues, venueResponse(venue))
		if limit > 0 && len(venues) >= limit {
			break
		}
	}

	exhausted := len(venues) == 0
	s.sessionCache.Set(userID.String(), sessionContext, mem.SessionSnapshot{
		Decided:   excluded,
		Exhausted: exhausted,
	}, sessionCacheTTL)

	return response_models.FeedResponse{Venues: venues, Exhausted: exhausted}, nil
}

// liveDecisions is the derived view over the append-only log: venue id ->
// latest non-undone decision for one session. Conflict checks always read
// the log; the snapshot cache only serves feeds.
func (s *SwipeService) liveDecisions(ctx context.Context, userID uuid.UUID, sessionContext string) (map[string]string, error) {
	events, err := s.swipeRepo.ListSession(ctx, userID, sessionContext)
	if err != nil {
		log.Printf("Error loading swipe session: %v", err)
		return nil, utils.ErrDatabaseError
	}

	decided := make(map[string]string)
	for _, e := range events {
		if e.Decision == db_models.DecisionUndo || e.Undone {
			continue
		}
		decided[e.VenueID.String()] = e.Decision
	}
	return decided, nil
}

func (s *SwipeService) excludedVenues(ctx context.Context, userID uuid.UUID, sessionContext string) (map[string]string, error) {
	if sessionContext == db_models.SessionOnboarding {
		return s.liveDecisions(ctx, userID, sessionContext)
	}

	// Discovery excludes every venue the user has decided anywhere plus
	// the shortlist.
	events, err := s.swipeRepo.ListEffective(ctx, userID)
	if err != nil {
		log.Printf("Error loading effective swipes: %v", err)
		return nil, utils.ErrDatabaseError
	}
	excluded := make(map[string]string, len(events))
	for _, e := range events {
		excluded[e.VenueID.String()] = e.Decision
	}

	entries, err := s.shortlistRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error loading shortlist for feed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	for _, entry := range entries {
		excluded[entry.VenueID.String()] = "shortlisted"
	}
	return excluded, nil
}

func venueResponse(v db_models.Venue) response_models.Venue {
	return response_models.Venue{
		ID:           v.ID.String(),
		Name:         v.Name,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Address:      v.Address,
		Description:  v.Description,
		PricingTier:  v.PricingTier,
		IsEstate:     v.IsEstate,
		IsHistoric:   v.IsHistoric,
		HasLodging:   v.HasLodging,
		HasGarden:    v.HasGarden,
		IsWaterfront: v.IsWaterfront,
	}
}
