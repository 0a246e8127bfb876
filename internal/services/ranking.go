package services

import (
	"sort"
	"time"

	"swoon/internal/models/db_models"
	"swoon/pkg/utils"
	"swoon/pkg/vectormath"
)

// Sort modes accepted by the ranking engine. date_saved only applies to
// shortlists. taste_score without a profile falls back to name ordering.
const (
	SortTasteScore  = "taste_score"
	SortPricingTier = "pricing_tier"
	SortName        = "name"
	SortDateSaved   = "date_saved"
)

func ValidSort(s string) bool {
	switch s {
	case SortTasteScore, SortPricingTier, SortName, SortDateSaved:
		return true
	}
	return false
}

// VenueCandidate is the ranking engine's view of one venue. Embedding is
// nil for venues that have not been embedded yet; those still participate
// in attribute filtering and sort after embedded venues under taste_score.
type VenueCandidate struct {
	ID          string
	Name        string
	PricingTier string

	IsEstate     bool
	IsHistoric   bool
	HasLodging   bool
	HasGarden    bool
	IsWaterfront bool

	Embedding  []float32
	TasteScore *float64
	SavedAt    time.Time
}

// VenueFilter combines predicates with AND across facets; the pricing tier
// multi-select is OR within its facet. A false flag means "not filtered".
type VenueFilter struct {
	PriceTiers   []string
	IsEstate     bool
	IsHistoric   bool
	HasLodging   bool
	HasGarden    bool
	IsWaterfront bool
}

func (f VenueFilter) matches(c VenueCandidate) bool {
	if len(f.PriceTiers) > 0 {
		ok := false
		for _, tier := range f.PriceTiers {
			if c.PricingTier == tier {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.IsEstate && !c.IsEstate {
		return false
	}
	if f.IsHistoric && !c.IsHistoric {
		return false
	}
	if f.HasLodging && !c.HasLodging {
		return false
	}
	if f.HasGarden && !c.HasGarden {
		return false
	}
	if f.IsWaterfront && !c.IsWaterfront {
		return false
	}
	return true
}

// RankVenues filters, orders and paginates candidates. The ordering is
// fully deterministic: every sort mode breaks ties by ascending venue id,
// so an identical (filter, sort, page) triple always returns the same
// slice. profileVector may be nil; taste_score then degrades to name
// ordering instead of erroring.
func RankVenues(candidates []VenueCandidate, filter VenueFilter, sortMode string, page, pageSize int, profileVector []float32) ([]VenueCandidate, int, error) {
	filtered := make([]VenueCandidate, 0, len(candidates))
	for _, c := range candidates {
		if filter.matches(c) {
			filtered = append(filtered, c)
		}
	}

	effectiveSort := sortMode
	if sortMode == SortTasteScore && profileVector == nil {
		effectiveSort = SortName
	}

	if effectiveSort == SortTasteScore {
		for i := range filtered {
			if filtered[i].TasteScore != nil || filtered[i].Embedding == nil {
				continue
			}
			score, err := vectormath.CosineSimilarity(profileVector, filtered[i].Embedding)
			if err != nil {
				return nil, 0, utils.ErrDimensionMismatch
			}
			filtered[i].TasteScore = &score
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch effectiveSort {
		case SortTasteScore:
			// Unembedded venues rank after every embedded one.
			switch {
			case a.TasteScore == nil && b.TasteScore == nil:
			case a.TasteScore == nil:
				return false
			case b.TasteScore == nil:
				return true
			case *a.TasteScore != *b.TasteScore:
				return *a.TasteScore > *b.TasteScore
			}
		case SortPricingTier:
			ra, rb := db_models.TierRank(a.PricingTier), db_models.TierRank(b.PricingTier)
			if ra != rb {
				return ra < rb
			}
		case SortDateSaved:
			if !a.SavedAt.Equal(b.SavedAt) {
				return a.SavedAt.After(b.SavedAt)
			}
		default: // SortName
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		}
		return a.ID < b.ID
	})

	total := len(filtered)
	start := (page - 1) * pageSize
	if start >= total {
		return []VenueCandidate{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}
