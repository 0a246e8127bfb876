package services_test

import (
	"reflect"
	"testing"
	"time"

	"swoon/internal/models/db_models"
	"swoon/internal/services"
)

func testCandidates() []services.VenueCandidate {
	return []services.VenueCandidate{
		{ID: "03", Name: "Cliffside Manor", PricingTier: db_models.TierLuxury, IsEstate: true, Embedding: []float32{1, 0}},
		{ID: "01", Name: "Applewood Barn", PricingTier: db_models.TierLow, HasGarden: true, Embedding: []float32{0, 1}},
		{ID: "04", Name: "Dockside Hall", PricingTier: db_models.TierMedium, IsWaterfront: true, Embedding: []float32{1, 1}},
		{ID: "02", Name: "Beacon Estate", PricingTier: db_models.TierHigh, IsEstate: true, HasLodging: true}, // no embedding
	}
}

func rankedIDs(t *testing.T, candidates []services.VenueCandidate, filter services.VenueFilter, sortMode string, profile []float32) []string {
	t.Helper()
	ranked, _, err := services.RankVenues(candidates, filter, sortMode, 1, 100, profile)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.ID
	}
	return ids
}

func TestRankVenues_PriceTierMultiSelectIsOr(t *testing.T) {
	filter := services.VenueFilter{PriceTiers: []string{db_models.TierLow, db_models.TierLuxury}}
	ids := rankedIDs(t, testCandidates(), filter, services.SortName, nil)
	if !reflect.DeepEqual(ids, []string{"01", "03"}) {
		t.Fatalf("expected low+luxury venues, got %v", ids)
	}
}

func TestRankVenues_FlagsCombineWithAnd(t *testing.T) {
	filter := services.VenueFilter{IsEstate: true, HasLodging: true}
	ids := rankedIDs(t, testCandidates(), filter, services.SortName, nil)
	if !reflect.DeepEqual(ids, []string{"02"}) {
		t.Fatalf("expected only the lodging estate, got %v", ids)
	}
}

func TestRankVenues_TasteScoreOrdersByDescendingSimilarity(t *testing.T) {
	profile := []float32{1, 0}
	ids := rankedIDs(t, testCandidates(), services.VenueFilter{}, services.SortTasteScore, profile)
	// 03 scores 1.0, 04 ~0.707, 01 scores 0; the unembedded 02 is last.
	if !reflect.DeepEqual(ids, []string{"03", "04", "01", "02"}) {
		t.Fatalf("unexpected taste ordering: %v", ids)
	}
}

func TestRankVenues_MissingProfileFallsBackToName(t *testing.T) {
	ids := rankedIDs(t, testCandidates(), services.VenueFilter{}, services.SortTasteScore, nil)
	if !reflect.DeepEqual(ids, []string{"01", "02", "03", "04"}) {
		t.Fatalf("expected name ordering fallback, got %v", ids)
	}
}

func TestRankVenues_PricingTierSort(t *testing.T) {
	ids := rankedIDs(t, testCandidates(), services.VenueFilter{}, services.SortPricingTier, nil)
	if !reflect.DeepEqual(ids, []string{"01", "04", "02", "03"}) {
		t.Fatalf("expected cheapest-first ordering, got %v", ids)
	}
}

func TestRankVenues_DateSavedSort(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	candidates := []services.VenueCandidate{
		{ID: "01", Name: "A", SavedAt: base},
		{ID: "02", Name: "B", SavedAt: base.Add(time.Hour)},
		{ID: "03", Name: "C", SavedAt: base}, // same instant as 01, id breaks the tie
	}
	ids := rankedIDs(t, candidates, services.VenueFilter{}, services.SortDateSaved, nil)
	if !reflect.DeepEqual(ids, []string{"02", "01", "03"}) {
		t.Fatalf("expected newest-first with id tie-break, got %v", ids)
	}
}

func TestRankVenues_EqualScoresBreakTiesByID(t *testing.T) {
	candidates := []services.VenueCandidate{
		{ID: "09", Name: "Same", Embedding: []float32{1, 0}},
		{ID: "02", Name: "Same", Embedding: []float32{1, 0}},
		{ID: "05", Name: "Same", Embedding: []float32{1, 0}},
	}
	ids := rankedIDs(t, candidates, services.VenueFilter{}, services.SortTasteScore, []float32{1, 0})
	if !reflect.DeepEqual(ids, []string{"02", "05", "09"}) {
		t.Fatalf("expected ascending id tie-break, got %v", ids)
	}
}

func TestRankVenues_PaginationIsStable(t *testing.T) {
	for run := 0; run < 3; run++ {
		pageOne, total, err := services.RankVenues(testCandidates(), services.VenueFilter{}, services.SortName, 1, 2, nil)
		if err != nil {
			t.Fatalf("rank failed: %v", err)
		}
		pageTwo, _, err := services.RankVenues(testCandidates(), services.VenueFilter{}, services.SortName, 2, 2, nil)
		if err != nil {
			t.Fatalf("rank failed: %v", err)
		}

		if total != 4 {
			t.Fatalf("expected total 4, got %d", total)
		}
		if pageOne[0].ID != "01" || pageOne[1].ID != "02" {
			t.Fatalf("unexpected first page: %v", pageOne)
		}
		if pageTwo[0].ID != "03" || pageTwo[1].ID != "04" {
			t.Fatalf("unexpected second page: %v", pageTwo)
		}
	}
}

func TestRankVenues_PageBeyondEndIsEmpty(t *testing.T) {
	page, total, err := services.RankVenues(testCandidates(), services.VenueFilter{}, services.SortName, 9, 10, nil)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(page) != 0 || total != 4 {
		t.Fatalf("expected empty page with total 4, got %d items, total %d", len(page), total)
	}
}
