package db_models

import (
	"github.com/pgvector/pgvector-go"
	"time"
)

type VenueEmbedding struct {
	VenueID   string `gorm:"primaryKey;column:venue_id"`
	Name      string
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
