package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"swoon/internal/models/db_models"
)

// VenueSimilarity is one row of a similarity query, scored in the database.
type VenueSimilarity struct {
	VenueID    string
	Similarity float64
}

type VenueEmbeddingRepositoryInterface interface {
	Upsert(ctx context.Context, embedding *db_models.VenueEmbedding) error
	GetByVenueID(ctx context.Context, venueID string) (*db_models.VenueEmbedding, error)
	NearestByVector(ctx context.Context, vector pgvector.Vector, candidateIDs []string, limit int) ([]VenueSimilarity, error)
	CatalogMean(ctx context.Context) ([]float32, error)
}

type VenueEmbeddingRepository struct {
	db *gorm.DB
}

func NewVenueEmbeddingRepository(db *gorm.DB) VenueEmbeddingRepositoryInterface {
	return &VenueEmbeddingRepository{db: db}
}

func (r *VenueEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.VenueEmbedding) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "venue_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "embedding"}),
	}).Create(embedding).Error
}

func (r *VenueEmbeddingRepository) GetByVenueID(ctx context.Context, venueID string) (*db_models.VenueEmbedding, error) {
	var embedding db_models.VenueEmbedding
	err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).First(&embedding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &embedding, nil
}

// NearestByVector scores venues against the query vector in the database,
// ordered by descending cosine similarity with ascending venue id as the
// tie-break. Empty candidateIDs means the whole catalog; venues with no
// stored vector never appear. limit <= 0 returns every match.
func (r *VenueEmbeddingRepository) NearestByVector(ctx context.Context, vector pgvector.Vector, candidateIDs []string, limit int) ([]VenueSimilarity, error) {
	query := `SELECT venue_id, (1 - (embedding <=> ?)) as similarity FROM venue_embeddings`
	args := []interface{}{vector}
	if len(candidateIDs) > 0 {
		query += ` WHERE venue_id IN ?`
		args = append(args, candidateIDs)
	}
	query += ` ORDER BY embedding <=> ?, venue_id asc`
	args = append(args, vector)
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var results []VenueSimilarity
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CatalogMean is the average of every stored venue embedding, the neutral
// default vector for users with no likes yet.
func (r *VenueEmbeddingRepository) CatalogMean(ctx context.Context) ([]float32, error) {
	var row struct {
		Mean pgvector.Vector `gorm:"column:mean"`
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT avg(embedding) as mean FROM venue_embeddings`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return row.Mean.Slice(), nil
}
