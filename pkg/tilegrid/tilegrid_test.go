package tilegrid_test

import (
	"reflect"
	"testing"

	"swoon/pkg/tilegrid"
)

func TestDecompose_IsDeterministic(t *testing.T) {
	region := tilegrid.BBox{MinLon: -71.2, MinLat: 42.1, MaxLon: -70.9, MaxLat: 42.4}

	first, err := tilegrid.Decompose(region, 0.05)
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	second, err := tilegrid.Decompose(region, 0.05)
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}

	if len(first) == 0 {
		t.Fatal("expected at least one tile")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two decompositions of the same region differ")
	}
}

func TestDecompose_SmallRegionYieldsFourTiles(t *testing.T) {
	region := tilegrid.BBox{MinLon: 0, MinLat: 0, MaxLon: 0.001, MaxLat: 0.001}

	tiles, err := tilegrid.Decompose(region, 0.0005)
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if len(tiles) != 4 {
		t.Fatalf("expected 4 tiles, got %d", len(tiles))
	}

	keys := map[string]bool{}
	for _, tile := range tiles {
		keys[tile.Key] = true
	}
	if len(keys) != 4 {
		t.Fatalf("expected 4 distinct keys, got %d", len(keys))
	}
	if !keys["0.0000,0.0000,0.0005,0.0005"] {
		t.Fatalf("missing origin tile key, got %v", keys)
	}
}

func TestDecompose_BoundaryTilesKeyedByFullBounds(t *testing.T) {
	// A region that ends mid-tile: the last column is clipped, but its
	// key must come from the full grid cell so a later, larger region
	// reuses the same ledger entry.
	region := tilegrid.BBox{MinLon: 0, MinLat: 0, MaxLon: 0.0008, MaxLat: 0.0005}

	tiles, err := tilegrid.Decompose(region, 0.0005)
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if len(tiles) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(tiles))
	}

	var clippedTile *tilegrid.Tile
	for i := range tiles {
		if tiles[i].Key == "0.0005,0.0000,0.0010,0.0005" {
			clippedTile = &tiles[i]
		}
	}
	if clippedTile == nil {
		t.Fatal("expected boundary tile keyed by its full bounds")
	}
	if clippedTile.Clipped.MaxLon != 0.0008 {
		t.Fatalf("expected clipped max lon 0.0008, got %v", clippedTile.Clipped.MaxLon)
	}
	if clippedTile.Bounds.MaxLon != 0.0010 {
		t.Fatalf("expected full max lon 0.0010, got %v", clippedTile.Bounds.MaxLon)
	}
}

func TestDecompose_OverlappingRegionsShareKeys(t *testing.T) {
	a := tilegrid.BBox{MinLon: 0, MinLat: 0, MaxLon: 0.001, MaxLat: 0.001}
	b := tilegrid.BBox{MinLon: 0.0005, MinLat: 0, MaxLon: 0.0015, MaxLat: 0.001}

	tilesA, err := tilegrid.Decompose(a, 0.0005)
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	tilesB, err := tilegrid.Decompose(b, 0.0005)
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}

	keysA := map[string]bool{}
	for _, tile := range tilesA {
		keysA[tile.Key] = true
	}
	shared := 0
	for _, tile := range tilesB {
		if keysA[tile.Key] {
			shared++
		}
	}
	if shared != 2 {
		t.Fatalf("expected 2 shared tile keys between overlapping regions, got %d", shared)
	}
}

func TestDecompose_RejectsInvalidInput(t *testing.T) {
	if _, err := tilegrid.Decompose(tilegrid.BBox{MinLon: 1, MinLat: 0, MaxLon: 0, MaxLat: 1}, 0.1); err == nil {
		t.Fatal("expected error for inverted region")
	}
	if _, err := tilegrid.Decompose(tilegrid.BBox{MinLon: 0, MinLat: 0, MaxLon: 1, MaxLat: 1}, 0); err == nil {
		t.Fatal("expected error for zero edge")
	}
}

func TestDecompose_RejectsEdgeBelowKeyResolution(t *testing.T) {
	// At 0.00001 degrees, adjacent cells round to the same 4-decimal key
	// and the ledger would treat distinct areas as one tile.
	region := tilegrid.BBox{MinLon: 0, MinLat: 0, MaxLon: 0.001, MaxLat: 0.001}
	if _, err := tilegrid.Decompose(region, 0.00001); err == nil {
		t.Fatal("expected error for edge below the key resolution")
	}

	// The resolution itself is still usable.
	tiles, err := tilegrid.Decompose(region, tilegrid.MinEdge)
	if err != nil {
		t.Fatalf("decompose at minimum edge failed: %v", err)
	}
	keys := map[string]bool{}
	for _, tile := range tiles {
		keys[tile.Key] = true
	}
	if len(keys) != len(tiles) {
		t.Fatalf("tile keys collide at the minimum edge: %d tiles, %d keys", len(tiles), len(keys))
	}
}
