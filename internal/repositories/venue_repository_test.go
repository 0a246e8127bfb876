package repositories_test

import (
	"context"
	"testing"

	"swoon/internal/models/db_models"
	"swoon/internal/repositories"

	"github.com/google/uuid"
)

func TestVenueRepository_UpsertKeyedOnSourceID(t *testing.T) {
	db := openTestDB(t, &db_models.Venue{})
	repo := repositories.NewVenueRepository(db)

	venue := db_models.Venue{
		SourceID:       "osm-node-42",
		Name:           "Rosewood Farm",
		PricingTier:    db_models.TierMedium,
		IsWeddingVenue: true,
	}
	if err := repo.Upsert(context.Background(), &venue); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// A re-crawl of the same source replaces the data in place.
	update := db_models.Venue{
		SourceID:       "osm-node-42",
		Name:           "Rosewood Farm & Estate",
		PricingTier:    db_models.TierHigh,
		IsWeddingVenue: true,
		IsEstate:       true,
	}
	if err := repo.Upsert(context.Background(), &update); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var count int64
	if err := db.Model(&db_models.Venue{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row per source id, got %d", count)
	}

	got, err := repo.GetBySourceID(context.Background(), "osm-node-42")
	if err != nil || got == nil {
		t.Fatalf("get by source id failed: %v (%v)", got, err)
	}
	if got.Name != "Rosewood Farm & Estate" || got.PricingTier != db_models.TierHigh || !got.IsEstate {
		t.Fatalf("expected refreshed venue data, got %+v", got)
	}
	if got.ID != venue.ID {
		t.Fatalf("identity must survive re-crawl, got %s want %s", got.ID, venue.ID)
	}
}

func TestVenueRepository_GetByIDAbsent(t *testing.T) {
	db := openTestDB(t, &db_models.Venue{})
	repo := repositories.NewVenueRepository(db)

	venue, err := repo.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if venue != nil {
		t.Fatalf("expected nil for unknown id, got %+v", venue)
	}
}

func TestVenueRepository_ListsFilterByFlags(t *testing.T) {
	db := openTestDB(t, &db_models.Venue{})
	repo := repositories.NewVenueRepository(db)

	venues := []db_models.Venue{
		{SourceID: "s-1", Name: "Seed Hall", IsWeddingVenue: true, IsOnboardingSeed: true},
		{SourceID: "s-2", Name: "Catalog Barn", IsWeddingVenue: true},
		{SourceID: "s-3", Name: "Corner Cafe"}, // crawled but not a wedding venue
	}
	for i := range venues {
		if err := repo.Upsert(context.Background(), &venues[i]); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	wedding, err := repo.ListWeddingVenues(context.Background())
	if err != nil {
		t.Fatalf("list wedding venues failed: %v", err)
	}
	if len(wedding) != 2 {
		t.Fatalf("expected 2 wedding venues, got %d", len(wedding))
	}

	seeds, err := repo.ListOnboardingSeeds(context.Background())
	if err != nil {
		t.Fatalf("list seeds failed: %v", err)
	}
	if len(seeds) != 1 || seeds[0].Name != "Seed Hall" {
		t.Fatalf("expected only the seed venue, got %+v", seeds)
	}
}

func TestVenueRepository_ListByIDs(t *testing.T) {
	db := openTestDB(t, &db_models.Venue{})
	repo := repositories.NewVenueRepository(db)

	first := db_models.Venue{SourceID: "s-1", Name: "Applewood Barn", IsWeddingVenue: true}
	second := db_models.Venue{SourceID: "s-2", Name: "Beacon Point", IsWeddingVenue: true}
	for _, v := range []*db_models.Venue{&first, &second} {
		if err := repo.Upsert(context.Background(), v); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	got, err := repo.ListByIDs(context.Background(), []uuid.UUID{first.ID})
	if err != nil {
		t.Fatalf("list by ids failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Applewood Barn" {
		t.Fatalf("unexpected result %+v", got)
	}

	empty, err := repo.ListByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty list failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result for no ids, got %+v", empty)
	}
}
