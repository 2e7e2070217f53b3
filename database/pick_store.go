// database/pick_store.go - GORM-backed pick ledger storage
package database

import (
	"context"
	"errors"
	"fmt"

	"fairway/models"
	"fairway/services"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PickStore implements services.PickStore on PostgreSQL. The submit
// transaction takes a FOR UPDATE lock on the current most-recent row,
// so concurrent submissions for the same member/tournament serialize
// at the database and the loser sees the winner's row as prev. When no
// prior row exists there is nothing to lock on, and the partial unique
// index idx_picks_current backstops the race instead: the second
// insert of a current row fails 23505 and surfaces as ErrWriteConflict.
type PickStore struct {
	db *gorm.DB
}

func NewPickStore(db *gorm.DB) *PickStore {
	return &PickStore{db: db}
}

func (s *PickStore) Submit(ctx context.Context, memberID, tournamentID uint, build func(prev *models.Pick) (*models.Pick, error)) (*models.Pick, error) {
	var saved *models.Pick

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prior []models.Pick
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("league_member_id = ? AND tournament_id = ? AND is_most_recent = ?",
				memberID, tournamentID, true).
			Limit(1).
			Find(&prior).Error; err != nil {
			return err
		}

		var prev *models.Pick
		if len(prior) > 0 {
			prev = &prior[0]
		}

		next, err := build(prev)
		if err != nil {
			return err
		}

		if prev != nil {
			if err := tx.Model(&models.Pick{}).
				Where("id = ?", prev.ID).
				Update("is_most_recent", false).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(next).Error; err != nil {
			return err
		}
		saved = next
		return nil
	})
	if err != nil {
		return nil, mapPgError(err)
	}
	return saved, nil
}

func (s *PickStore) MostRecent(ctx context.Context, memberID, tournamentID uint) (*models.Pick, error) {
	var picks []models.Pick
	err := s.db.WithContext(ctx).
		Preload("Golfer").
		Where("league_member_id = ? AND tournament_id = ? AND is_most_recent = ?",
			memberID, tournamentID, true).
		Limit(1).
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	if len(picks) == 0 {
		return nil, nil
	}
	return &picks[0], nil
}

func (s *PickStore) History(ctx context.Context, memberID uint) ([]models.Pick, error) {
	var picks []models.Pick
	err := s.db.WithContext(ctx).
		Preload("Golfer").
		Preload("Tournament").
		Where("league_member_id = ?", memberID).
		Order("timestamp_utc").
		Find(&picks).Error
	return picks, err
}

// mapPgError translates storage-level races into the service error
// the ledger retries on. 40001/40P01 are serialization and deadlock
// failures, 23505 a unique violation from two inserts landing at once.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "23505":
			return fmt.Errorf("%w: %s", services.ErrWriteConflict, pgErr.Code)
		}
	}
	return err
}
