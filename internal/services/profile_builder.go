package services

import (
	"swoon/internal/models/db_models"
	"swoon/pkg/vectormath"
)

// ProfileBuildOptions are the tunable constants of the taste inference
// heuristic. Damping is the fraction of the skipped centroid pulled out of
// the liked centroid before re-normalizing; SaturationK is the like count
// at which confidence reaches half of its cohesion-capped ceiling.
type ProfileBuildOptions struct {
	Damping     float64
	SaturationK float64
}

var DefaultProfileBuildOptions = ProfileBuildOptions{
	Damping:     0.25,
	SaturationK: 3,
}

// LikedVenueAttributes carries the attribute flags of one liked venue into
// the descriptive-word vocabulary matching.
type LikedVenueAttributes struct {
	PricingTier  string
	IsEstate     bool
	IsHistoric   bool
	HasLodging   bool
	HasGarden    bool
	IsWaterfront bool
}

type BuiltProfile struct {
	Vector           []float32
	Confidence       float64
	DescriptiveWords []string
	Undetermined     bool
}

// BuildTasteProfile aggregates swipe evidence into a profile vector, a
// confidence score and a short human-readable gloss. With zero likes the
// result is the neutral catalog mean at confidence 0, so ranking degrades
// to attribute-only ordering instead of failing.
func BuildTasteProfile(liked, skipped [][]float32, likedAttrs []LikedVenueAttributes, catalogMean []float32, opts ProfileBuildOptions) (BuiltProfile, error) {
	if len(liked) == 0 {
		neutral := make([]float32, len(catalogMean))
		copy(neutral, catalogMean)
		return BuiltProfile{
			Vector:           neutral,
			Confidence:       0,
			DescriptiveWords: []string{},
			Undetermined:     true,
		}, nil
	}

	center, err := vectormath.Centroid(liked)
	if err != nil {
		return BuiltProfile{}, err
	}

	if len(skipped) > 0 && opts.Damping > 0 {
		away, err := vectormath.Centroid(skipped)
		if err != nil {
			return BuiltProfile{}, err
		}
		center, err = vectormath.Damp(center, away, opts.Damping)
		if err != nil {
			return BuiltProfile{}, err
		}
	}

	cohesion, err := vectormath.Cohesion(liked)
	if err != nil {
		return BuiltProfile{}, err
	}

	return BuiltProfile{
		Vector:           vectormath.Normalize(center),
		Confidence:       confidence(len(liked), cohesion, opts),
		DescriptiveWords: descriptiveWords(likedAttrs),
	}, nil
}

// confidence saturates with like count and is capped by the internal
// cohesion of the likes: many contradictory likes stay low-confidence.
func confidence(likes int, cohesion float64, opts ProfileBuildOptions) float64 {
	if likes == 0 {
		return 0
	}
	saturation := float64(likes) / (float64(likes) + opts.SaturationK)
	if cohesion < 0 {
		cohesion = 0
	}
	if cohesion > 1 {
		cohesion = 1
	}
	return saturation * cohesion
}

// descriptiveWords matches the liked set against a fixed vocabulary keyed
// to attribute flags. A flag contributes when at least half the liked
// venues carry it; the dominant pricing tier adds one more word. Order is
// fixed, so the same liked set always yields the same gloss.
func descriptiveWords(likedAttrs []LikedVenueAttributes) []string {
	if len(likedAttrs) == 0 {
		return []string{}
	}

	half := (len(likedAttrs) + 1) / 2
	counts := map[string]int{}
	tierCounts := map[string]int{}
	for _, a := range likedAttrs {
		if a.IsEstate {
			counts["estate"]++
		}
		if a.IsHistoric {
			counts["historic"]++
		}
		if a.HasLodging {
			counts["overnight lodging"]++
		}
		if a.HasGarden {
			counts["garden"]++
		}
		if a.IsWaterfront {
			counts["waterfront"]++
		}
		tierCounts[a.PricingTier]++
	}

	words := make([]string, 0, 6)
	for _, w := range []string{"estate", "historic", "overnight lodging", "garden", "waterfront"} {
		if counts[w] >= half {
			words = append(words, w)
		}
	}

	tierWords := map[string]string{
		db_models.TierLow:    "budget-friendly",
		db_models.TierMedium: "mid-range",
		db_models.TierHigh:   "upscale",
		db_models.TierLuxury: "luxury",
	}
	dominant, best := "", 0
	for _, tier := range []string{db_models.TierLow, db_models.TierMedium, db_models.TierHigh, db_models.TierLuxury} {
		if tierCounts[tier] > best {
			dominant, best = tier, tierCounts[tier]
		}
	}
	if w, ok := tierWords[dominant]; ok {
		words = append(words, w)
	}

	if len(words) > 6 {
		words = words[:6]
	}
	return words
}
