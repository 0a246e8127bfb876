package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"swoon/internal/models/db_models"
)

// SwipeRepositoryInterface persists the append-only decision log. Rows are
// never deleted: an undo flags the reverted row and appends its own marker
// event so the full history stays reconstructable.
type SwipeRepositoryInterface interface {
	Append(ctx context.Context, event *db_models.SwipeEvent) error
	ListSession(ctx context.Context, userID uuid.UUID, sessionContext string) ([]db_models.SwipeEvent, error)
	ListEffective(ctx context.Context, userID uuid.UUID) ([]db_models.SwipeEvent, error)
	NextSequence(ctx context.Context, userID uuid.UUID, sessionContext string) (int, error)
	UndoLatest(ctx context.Context, userID uuid.UUID, sessionContext string) (*db_models.SwipeEvent, error)
}

type SwipeRepository struct {
	db *gorm.DB
}

func NewSwipeRepository(db *gorm.DB) SwipeRepositoryInterface {
	return &SwipeRepository{db: db}
}

func (s *SwipeRepository) Append(ctx context.Context, event *db_models.SwipeEvent) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(event).Error
	})
}

func (s *SwipeRepository) ListSession(ctx context.Context, userID uuid.UUID, sessionContext string) ([]db_models.SwipeEvent, error) {
	var events []db_models.SwipeEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND session_context = ?", userID, sessionContext).
		Order("sequence asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListEffective returns the live like/skip decisions across all sessions,
// i.e. rows that are not undo markers and not themselves undone.
func (s *SwipeRepository) ListEffective(ctx context.Context, userID uuid.UUID) ([]db_models.SwipeEvent, error) {
	var events []db_models.SwipeEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND undone = ? AND decision IN ?",
			userID, false, []string{db_models.DecisionLike, db_models.DecisionSkip}).
		Order("sequence asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *SwipeRepository) NextSequence(ctx context.Context, userID uuid.UUID, sessionContext string) (int, error) {
	var max int
	err := s.db.WithContext(ctx).
		Model(&db_models.SwipeEvent{}).
		Where("user_id = ? AND session_context = ?", userID, sessionContext).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// UndoLatest flags the most recent non-undone decision of the session and
// appends the undo marker, both inside one transaction. Returns the
// reverted event, or (nil, nil) when the session has nothing to undo.
func (s *SwipeRepository) UndoLatest(ctx context.Context, userID uuid.UUID, sessionContext string) (*db_models.SwipeEvent, error) {
	var reverted *db_models.SwipeEvent

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var latest db_models.SwipeEvent
		err := tx.WithContext(ctx).
			Where("user_id = ? AND session_context = ? AND undone = ? AND decision IN ?",
				userID, sessionContext, false, []string{db_models.DecisionLike, db_models.DecisionSkip}).
			Order("sequence desc").
			First(&latest).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.WithContext(ctx).
			Model(&db_models.SwipeEvent{}).
			Where("id = ?", latest.ID).
			Update("undone", true).Error; err != nil {
			return err
		}

		var next int
		if err := tx.WithContext(ctx).
			Model(&db_models.SwipeEvent{}).
			Where("user_id = ? AND session_context = ?", userID, sessionContext).
			Select("COALESCE(MAX(sequence), 0)").
			Scan(&next).Error; err != nil {
			return err
		}

		marker := db_models.SwipeEvent{
			UserID:         userID,
			VenueID:        latest.VenueID,
			SessionContext: sessionContext,
			Decision:       db_models.DecisionUndo,
			Sequence:       next + 1,
		}
		if err := tx.WithContext(ctx).Create(&marker).Error; err != nil {
			return err
		}

		latest.Undone = true
		reverted = &latest
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reverted, nil
}
