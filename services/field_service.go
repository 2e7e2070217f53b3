// services/field_service.go - Versioned roster snapshot ingestion
package services

import (
	"log"

	"fairway/models"
	"fairway/nameparse"

	"gorm.io/gorm"
)

// FieldPlayer is one entry of an upstream field feed, already fetched
// and decoded by the ingestion job. Names arrive feed-formatted
// ("Last, First").
type FieldPlayer struct {
	Name        string
	IsAlternate bool
	IsInjured   bool
}

// FieldService applies roster snapshots. Fetching the feed is the
// ingestion job's problem; this side only versions what it is handed,
// with the same supersede-not-delete discipline as the pick ledger.
type FieldService struct {
	db    *gorm.DB
	clock Clock
}

func NewFieldService(db *gorm.DB, clock Clock) *FieldService {
	return &FieldService{db: db, clock: clock}
}

// ApplySnapshot replaces the current field for a tournament/year. The
// previous snapshot's rows are flipped to not-most-recent and a fresh
// row set is inserted, all in one transaction; unknown golfers are
// created on the way through.
func (s *FieldService) ApplySnapshot(tournamentID uint, year int, players []FieldPlayer) (int, error) {
	now := s.clock.Now()
	inserted := 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TournamentGolfer{}).
			Where("tournament_id = ? AND year = ?", tournamentID, year).
			Updates(map[string]interface{}{
				"is_most_recent": false,
				"timestamp_utc":  now,
			}).Error; err != nil {
			return err
		}

		taken := map[string]bool{}
		var ids []string
		if err := tx.Model(&models.Golfer{}).Pluck("id", &ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			taken[id] = true
		}

		for _, player := range players {
			first, last, full := nameparse.ParseFeedName(player.Name)
			if full == "" {
				log.Printf("Skipping unparseable field entry %q", player.Name)
				continue
			}

			var golfer models.Golfer
			res := tx.Where("full_name = ?", full).Limit(1).Find(&golfer)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				golfer = models.Golfer{
					ID:        nameparse.GolferID(first, last, taken),
					FirstName: first,
					LastName:  last,
					FullName:  full,
				}
				if err := tx.Create(&golfer).Error; err != nil {
					return err
				}
				taken[golfer.ID] = true
				log.Printf("Added golfer %s (%s)", full, golfer.ID)
			}

			entry := models.TournamentGolfer{
				TournamentID: tournamentID,
				GolferID:     golfer.ID,
				Year:         year,
				IsMostRecent: true,
				IsActive:     true,
				IsAlternate:  player.IsAlternate,
				IsInjured:    player.IsInjured,
				TimestampUTC: now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
