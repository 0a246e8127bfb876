package services

import (
	"context"
	"log"

	"github.com/pgvector/pgvector-go"
	"swoon/internal/models/db_models"
	"swoon/internal/repositories"
	"swoon/pkg/utils"
	"swoon/pkg/vectormath"
)

// ScoredVenue is one similarity-ranked candidate.
type ScoredVenue struct {
	VenueID string
	Score   float64
}

type EmbeddingServiceInterface interface {
	PutVenueEmbedding(ctx context.Context, venueID, name string, vector []float32) error
	GetVenueEmbedding(ctx context.Context, venueID string) ([]float32, error)
	Similarity(a, b []float32) (float64, error)
	RankBySimilarity(ctx context.Context, query []float32, candidateIDs []string, topK int) ([]ScoredVenue, error)
	CatalogMean(ctx context.Context) ([]float32, error)
}

type EmbeddingService struct {
	embeddingRepo repositories.VenueEmbeddingRepositoryInterface
}

func NewEmbeddingService(embeddingRepo repositories.VenueEmbeddingRepositoryInterface) EmbeddingServiceInterface {
	return &EmbeddingService{embeddingRepo: embeddingRepo}
}

func (e *EmbeddingService) PutVenueEmbedding(ctx context.Context, venueID, name string, vector []float32) error {
	if len(vector) != utils.EmbeddingDim {
		return utils.ErrDimensionMismatch
	}

	err := e.embeddingRepo.Upsert(ctx, &db_models.VenueEmbedding{
		VenueID:   venueID,
		Name:      name,
		Embedding: pgvector.NewVector(vector),
	})
	if err != nil {
		log.Printf("Error storing venue embedding: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// GetVenueEmbedding returns (nil, nil) for a venue with no stored vector.
func (e *EmbeddingService) GetVenueEmbedding(ctx context.Context, venueID string) ([]float32, error) {
	row, err := e.embeddingRepo.GetByVenueID(ctx, venueID)
	if err != nil {
		log.Printf("Error fetching venue embedding: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, nil
	}
	return row.Embedding.Slice(), nil
}

func (e *EmbeddingService) Similarity(a, b []float32) (float64, error) {
	score, err := vectormath.CosineSimilarity(a, b)
	if err != nil {
		return 0, utils.ErrDimensionMismatch
	}
	return score, nil
}

// RankBySimilarity orders the candidates by descending cosine similarity
// to the query, ties broken by ascending venue id so equal scores rank
// reproducibly. The scoring and ordering run in the database; candidates
// without a stored vector are left out.
func (e *EmbeddingService) RankBySimilarity(ctx context.Context, query []float32, candidateIDs []string, topK int) ([]ScoredVenue, error) {
	if len(query) != utils.EmbeddingDim {
		return nil, utils.ErrDimensionMismatch
	}

	rows, err := e.embeddingRepo.NearestByVector(ctx, pgvector.NewVector(query), candidateIDs, topK)
	if err != nil {
		log.Printf("Error ranking candidate embeddings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	scored := make([]ScoredVenue, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, ScoredVenue{VenueID: row.VenueID, Score: row.Similarity})
	}
	return scored, nil
}

func (e *EmbeddingService) CatalogMean(ctx context.Context) ([]float32, error) {
	mean, err := e.embeddingRepo.CatalogMean(ctx)
	if err != nil {
		log.Printf("Error computing catalog mean embedding: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return mean, nil
}
