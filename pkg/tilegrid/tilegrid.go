// Package tilegrid decomposes geographic bounding regions into grid-aligned
// tiles. Tile keys are the unit of crawl deduplication: two runs over
// overlapping regions must produce identical keys for the shared tiles, so
// the grid is anchored at the 0 degree origin and keys are quantized to 4
// decimal degrees.
package tilegrid

import (
	"errors"
	"fmt"
	"math"
)

type BBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

func (b BBox) Valid() bool {
	return b.MinLon < b.MaxLon && b.MinLat < b.MaxLat &&
		b.MinLon >= -180 && b.MaxLon <= 180 &&
		b.MinLat >= -90 && b.MaxLat <= 90
}

// Tile is one grid cell. Bounds are the full grid-aligned cell; Clipped is
// the intersection with the requested region and is what a fetcher should
// actually query. The key is always derived from the full bounds so ledger
// entries are reused across differently-shaped regions.
type Tile struct {
	Key     string
	Bounds  BBox
	Clipped BBox
}

var ErrInvalidGrid = errors.New("tilegrid: invalid region or edge length")

// MinEdge is the smallest usable edge length. Below the 4-decimal key
// resolution, adjacent tiles would quantize to colliding keys and the
// ledger would conflate distinct areas.
const MinEdge = 1e-4

// Quantize rounds a coordinate to the 4-decimal-degree grid resolution.
func Quantize(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// Key builds the canonical tile key "minLon,minLat,maxLon,maxLat".
func Key(b BBox) string {
	return fmt.Sprintf("%.4f,%.4f,%.4f,%.4f",
		Quantize(b.MinLon), Quantize(b.MinLat), Quantize(b.MaxLon), Quantize(b.MaxLat))
}

// Decompose splits region into non-overlapping tiles of the given edge
// length in degrees. Boundary tiles are clipped to the region but keyed by
// their full grid-aligned bounds.
func Decompose(region BBox, edge float64) ([]Tile, error) {
	if !region.Valid() || edge < MinEdge {
		return nil, ErrInvalidGrid
	}

	const eps = 1e-9

	startX := int(math.Floor(region.MinLon/edge + eps))
	endX := int(math.Ceil(region.MaxLon/edge - eps))
	startY := int(math.Floor(region.MinLat/edge + eps))
	endY := int(math.Ceil(region.MaxLat/edge - eps))

	tiles := make([]Tile, 0, (endX-startX)*(endY-startY))
	for x := startX; x < endX; x++ {
		for y := startY; y < endY; y++ {
			bounds := BBox{
				MinLon: Quantize(float64(x) * edge),
				MinLat: Quantize(float64(y) * edge),
				MaxLon: Quantize(float64(x+1) * edge),
				MaxLat: Quantize(float64(y+1) * edge),
			}
			clipped := BBox{
				MinLon: math.Max(bounds.MinLon, region.MinLon),
				MinLat: math.Max(bounds.MinLat, region.MinLat),
				MaxLon: math.Min(bounds.MaxLon, region.MaxLon),
				MaxLat: math.Min(bounds.MaxLat, region.MaxLat),
			}
			tiles = append(tiles, Tile{
				Key:     Key(bounds),
				Bounds:  bounds,
				Clipped: clipped,
			})
		}
	}

	return tiles, nil
}
