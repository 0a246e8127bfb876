package response_models

type CrawlPlan struct {
	TotalTiles   int      `json:"total_tiles"`
	PendingTiles []string `json:"pending_tiles"`
	FreshTiles   int      `json:"fresh_tiles"`
}

type CollectedTile struct {
	TileKey      string `json:"tile_key"`
	ElementCount int    `json:"element_count"`
}

// CrawlReport is the outcome of one run. Failed tiles were not recorded in
// the ledger and stay eligible for the next run.
type CrawlReport struct {
	Collected []CollectedTile `json:"collected"`
	Failed    []string        `json:"failed"`
	Skipped   int             `json:"skipped"`
}
