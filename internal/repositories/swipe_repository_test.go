package repositories_test

import (
	"context"
	"testing"

	"swoon/internal/models/db_models"
	"swoon/internal/repositories"

	"github.com/google/uuid"
)

func appendSwipe(t *testing.T, repo repositories.SwipeRepositoryInterface, userID, venueID uuid.UUID, session, decision string, seq int) {
	t.Helper()
	err := repo.Append(context.Background(), &db_models.SwipeEvent{
		UserID:         userID,
		VenueID:        venueID,
		SessionContext: session,
		Decision:       decision,
		Sequence:       seq,
	})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
}

func TestSwipeRepository_SequenceStartsAtOne(t *testing.T) {
	db := openTestDB(t, &db_models.SwipeEvent{})
	repo := repositories.NewSwipeRepository(db)
	userID := uuid.New()

	seq, err := repo.NextSequence(context.Background(), userID, db_models.SessionOnboarding)
	if err != nil {
		t.Fatalf("next sequence failed: %v", err)
	}
	if seq != 1 {
		t.Fatalf("expected first sequence 1, got %d", seq)
	}

	appendSwipe(t, repo, userID, uuid.New(), db_models.SessionOnboarding, db_models.DecisionLike, seq)
	seq, err = repo.NextSequence(context.Background(), userID, db_models.SessionOnboarding)
	if err != nil {
		t.Fatalf("next sequence failed: %v", err)
	}
	if seq != 2 {
		t.Fatalf("expected sequence 2 after one append, got %d", seq)
	}

	// Sequences are per session, not per user.
	seq, err = repo.NextSequence(context.Background(), userID, db_models.SessionDiscovery)
	if err != nil {
		t.Fatalf("next sequence failed: %v", err)
	}
	if seq != 1 {
		t.Fatalf("expected independent session sequence, got %d", seq)
	}
}

func TestSwipeRepository_ListSessionOrdersBySequence(t *testing.T) {
	db := openTestDB(t, &db_models.SwipeEvent{})
	repo := repositories.NewSwipeRepository(db)
	userID := uuid.New()

	// Appended out of order to prove the read path sorts.
	appendSwipe(t, repo, userID, uuid.New(), db_models.SessionDiscovery, db_models.DecisionSkip, 2)
	appendSwipe(t, repo, userID, uuid.New(), db_models.SessionDiscovery, db_models.DecisionLike, 1)
	appendSwipe(t, repo, userID, uuid.New(), db_models.SessionDiscovery, db_models.DecisionLike, 3)

	events, err := repo.ListSession(context.Background(), userID, db_models.SessionDiscovery)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Sequence != i+1 {
			t.Fatalf("expected sequence order, got %+v", events)
		}
	}
}

func TestSwipeRepository_UndoLatestFlagsAndAppends(t *testing.T) {
	db := openTestDB(t, &db_models.SwipeEvent{})
	repo := repositories.NewSwipeRepository(db)
	userID := uuid.New()
	firstVenue := uuid.New()
	secondVenue := uuid.New()

	appendSwipe(t, repo, userID, firstVenue, db_models.SessionOnboarding, db_models.DecisionLike, 1)
	appendSwipe(t, repo, userID, secondVenue, db_models.SessionOnboarding, db_models.DecisionSkip, 2)

	reverted, err := repo.UndoLatest(context.Background(), userID, db_models.SessionOnboarding)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if reverted == nil || reverted.VenueID != secondVenue {
		t.Fatalf("expected the latest decision reverted, got %+v", reverted)
	}

	events, err := repo.ListSession(context.Background(), userID, db_models.SessionOnboarding)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("undo must append a marker, not delete; got %d rows", len(events))
	}
	marker := events[2]
	if marker.Decision != db_models.DecisionUndo || marker.VenueID != secondVenue || marker.Sequence != 3 {
		t.Fatalf("unexpected undo marker %+v", marker)
	}

	effective, err := repo.ListEffective(context.Background(), userID)
	if err != nil {
		t.Fatalf("list effective failed: %v", err)
	}
	if len(effective) != 1 || effective[0].VenueID != firstVenue {
		t.Fatalf("expected only the first decision live, got %+v", effective)
	}
}

func TestSwipeRepository_UndoTwiceWalksBack(t *testing.T) {
	db := openTestDB(t, &db_models.SwipeEvent{})
	repo := repositories.NewSwipeRepository(db)
	userID := uuid.New()
	firstVenue := uuid.New()

	appendSwipe(t, repo, userID, firstVenue, db_models.SessionOnboarding, db_models.DecisionLike, 1)
	appendSwipe(t, repo, userID, uuid.New(), db_models.SessionOnboarding, db_models.DecisionSkip, 2)

	if _, err := repo.UndoLatest(context.Background(), userID, db_models.SessionOnboarding); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	reverted, err := repo.UndoLatest(context.Background(), userID, db_models.SessionOnboarding)
	if err != nil {
		t.Fatalf("second undo failed: %v", err)
	}
	if reverted == nil || reverted.VenueID != firstVenue {
		t.Fatalf("expected second undo to revert the earlier decision, got %+v", reverted)
	}

	effective, err := repo.ListEffective(context.Background(), userID)
	if err != nil {
		t.Fatalf("list effective failed: %v", err)
	}
	if len(effective) != 0 {
		t.Fatalf("expected no live decisions, got %+v", effective)
	}
}

func TestSwipeRepository_UndoEmptySession(t *testing.T) {
	db := openTestDB(t, &db_models.SwipeEvent{})
	repo := repositories.NewSwipeRepository(db)

	reverted, err := repo.UndoLatest(context.Background(), uuid.New(), db_models.SessionDiscovery)
	if err != nil {
		t.Fatalf("undo on empty session must not error, got %v", err)
	}
	if reverted != nil {
		t.Fatalf("expected nothing reverted, got %+v", reverted)
	}
}
