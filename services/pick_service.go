// services/pick_service.go - The append-only pick ledger (write path)
package services

import (
	"context"
	"errors"
	"time"

	"fairway/models"
)

// PickStore is the transactional storage the ledger writes through.
// Submit must serialize calls for the same (member, tournament) pair:
// it row-locks the current most-recent pick, hands it to build, then
// atomically flips that row's flag and inserts the row build returned.
// If the transaction loses a race it reports ErrWriteConflict.
type PickStore interface {
	Submit(ctx context.Context, memberID, tournamentID uint, build func(prev *models.Pick) (*models.Pick, error)) (*models.Pick, error)
	MostRecent(ctx context.Context, memberID, tournamentID uint) (*models.Pick, error)
	History(ctx context.Context, memberID uint) ([]models.Pick, error)
}

// PickService owns the pick lifecycle: a submission is accepted only
// inside the tournament's pick window and lands as a new ledger row,
// never as an update. Prior rows survive with is_most_recent = false.
type PickService struct {
	store   PickStore
	windows *WindowResolver
	clock   Clock
}

func NewPickService(store PickStore, windows *WindowResolver, clock Clock) *PickService {
	return &PickService{store: store, windows: windows, clock: clock}
}

// Submit records a pick of golferID for the tournament. Submitting the
// same golfer twice is well-defined and appends a second row; the
// ledger does not collapse no-op resubmissions. A transient write
// conflict is retried once against the refreshed previous row.
func (s *PickService) Submit(ctx context.Context, member *models.LeagueMember, t *models.Tournament, golferID string) (*models.Pick, error) {
	now := s.clock.Now()

	_, close, err := s.windows.PickWindow(t)
	if err != nil {
		return nil, err
	}
	if !now.Before(close) {
		return nil, ErrDeadlinePassed
	}

	build := func(prev *models.Pick) (*models.Pick, error) {
		ts := s.clock.Now()
		if prev != nil && !ts.After(prev.TimestampUTC) {
			// The ledger must advance; an equal timestamp means the
			// write failed to move state and is rejected outright.
			return nil, ErrStaleTimestamp
		}
		return &models.Pick{
			LeagueMemberID: member.ID,
			TournamentID:   t.ID,
			GolferID:       golferID,
			Year:           t.Year,
			TimestampUTC:   ts,
			IsMostRecent:   true,
		}, nil
	}

	pick, err := s.store.Submit(ctx, member.ID, t.ID, build)
	if errors.Is(err, ErrWriteConflict) {
		pick, err = s.store.Submit(ctx, member.ID, t.ID, build)
	}
	if err != nil {
		return nil, err
	}
	return pick, nil
}

// MostRecent returns the member's active pick for the tournament, or
// nil when none exists.
func (s *PickService) MostRecent(ctx context.Context, memberID, tournamentID uint) (*models.Pick, error) {
	return s.store.MostRecent(ctx, memberID, tournamentID)
}

// History returns every ledger row for the member, superseded rows
// included, ordered by timestamp.
func (s *PickService) History(ctx context.Context, memberID uint) ([]models.Pick, error) {
	return s.store.History(ctx, memberID)
}

// SubmitManual backdates a commissioner-entered pick to midnight the
// day before the tournament starts, bypassing the window check. The
// ledger discipline is unchanged: the prior row is superseded, not
// replaced.
func (s *PickService) SubmitManual(ctx context.Context, member *models.LeagueMember, t *models.Tournament, golferID string) (*models.Pick, error) {
	backdated := time.Date(
		t.StartDate.Year(), t.StartDate.Month(), t.StartDate.Day()-1,
		0, 0, 0, 0, time.UTC,
	)

	return s.store.Submit(ctx, member.ID, t.ID, func(prev *models.Pick) (*models.Pick, error) {
		ts := backdated
		if prev != nil && !ts.After(prev.TimestampUTC) {
			// Manual entries over an existing pick still have to
			// advance the ledger.
			ts = s.clock.Now()
			if !ts.After(prev.TimestampUTC) {
				return nil, ErrStaleTimestamp
			}
		}
		return &models.Pick{
			LeagueMemberID: member.ID,
			TournamentID:   t.ID,
			GolferID:       golferID,
			Year:           t.Year,
			TimestampUTC:   ts,
			IsMostRecent:   true,
		}, nil
	})
}
