// services/pick_service_test.go
package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"fairway/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPickStore is an in-memory PickStore with the same contract as the
// database-backed one: serialized submits, flag flips, a partial unique
// index on the current row per member/tournament, optional injected
// write conflicts.
type memPickStore struct {
	mu        sync.Mutex
	rows      []models.Pick
	nextID    uint
	conflicts int // Submit fails with ErrWriteConflict this many times

	// beforeInsert runs once inside the lock after the prior-row scan,
	// standing in for a concurrent writer committing between the scan
	// and the insert.
	beforeInsert func(s *memPickStore)
}

func (s *memPickStore) Submit(ctx context.Context, memberID, tournamentID uint, build func(prev *models.Pick) (*models.Pick, error)) (*models.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts > 0 {
		s.conflicts--
		return nil, ErrWriteConflict
	}

	var prev *models.Pick
	for i := range s.rows {
		r := &s.rows[i]
		if r.LeagueMemberID == memberID && r.TournamentID == tournamentID && r.IsMostRecent {
			prev = r
			break
		}
	}

	var prevCopy *models.Pick
	if prev != nil {
		c := *prev
		prevCopy = &c
	}
	next, err := build(prevCopy)
	if err != nil {
		return nil, err
	}

	if s.beforeInsert != nil {
		hook := s.beforeInsert
		s.beforeInsert = nil
		hook(s)
	}

	// Mirror the partial unique index on the current row: a most-recent
	// row the scan above did not see means another writer won the insert.
	for i := range s.rows {
		r := &s.rows[i]
		if r.LeagueMemberID == memberID && r.TournamentID == tournamentID && r.IsMostRecent &&
			(prev == nil || r.ID != prev.ID) {
			return nil, ErrWriteConflict
		}
	}

	if prev != nil {
		prev.IsMostRecent = false
	}
	s.nextID++
	next.ID = s.nextID
	s.rows = append(s.rows, *next)

	out := *next
	return &out, nil
}

func (s *memPickStore) MostRecent(ctx context.Context, memberID, tournamentID uint) (*models.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		r := s.rows[i]
		if r.LeagueMemberID == memberID && r.TournamentID == tournamentID && r.IsMostRecent {
			return &r, nil
		}
	}
	return nil, nil
}

func (s *memPickStore) History(ctx context.Context, memberID uint) ([]models.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Pick
	for _, r := range s.rows {
		if r.LeagueMemberID == memberID {
			out = append(out, r)
		}
	}
	return out, nil
}

// steppingClock advances a fixed step on every read, so consecutive
// submissions always get strictly later timestamps.
type steppingClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func testMember() *models.LeagueMember {
	return &models.LeagueMember{ID: 7, LeagueID: 1, UserID: 3}
}

func openTournament() *models.Tournament {
	// Tee-off Thursday 2024-06-13 08:30 New York; the clock below
	// starts mid-window.
	return newTournament("2024-06-13", "08:30", "America/New_York", "2024-06-16")
}

func newTestPickService(store PickStore, clock Clock) *PickService {
	return NewPickService(store, NewWindowResolver(clock), clock)
}

func TestSubmit_AppendsVersionedRows(t *testing.T) {
	store := &memPickStore{}
	clock := &steppingClock{t: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), step: time.Second}
	svc := newTestPickService(store, clock)

	member := testMember()
	tour := openTournament()

	golfers := []string{"SCHES0100", "MCILR0100", "RAHMJ0100"}
	for _, g := range golfers {
		_, err := svc.Submit(context.Background(), member, tour, g)
		require.NoError(t, err)
	}

	history, err := svc.History(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, history, len(golfers))

	mostRecent := 0
	for i, row := range history {
		assert.Equal(t, golfers[i], row.GolferID)
		if row.IsMostRecent {
			mostRecent++
		}
		if i > 0 {
			assert.True(t, row.TimestampUTC.After(history[i-1].TimestampUTC),
				"ledger timestamps must strictly increase")
		}
	}
	assert.Equal(t, 1, mostRecent, "exactly one row may be most recent")

	current, err := svc.MostRecent(context.Background(), member.ID, tour.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "RAHMJ0100", current.GolferID)
}

func TestSubmit_SameGolferTwiceStillAppends(t *testing.T) {
	store := &memPickStore{}
	clock := &steppingClock{t: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), step: time.Second}
	svc := newTestPickService(store, clock)

	member := testMember()
	tour := openTournament()

	_, err := svc.Submit(context.Background(), member, tour, "SCHES0100")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), member, tour, "SCHES0100")
	require.NoError(t, err)

	history, err := svc.History(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.False(t, history[0].IsMostRecent)
	assert.True(t, history[1].IsMostRecent)
}

func TestSubmit_DeadlinePassed(t *testing.T) {
	store := &memPickStore{}
	// Clock sits after the 12:30 UTC tee-off.
	clock := FixedClock{Instant: time.Date(2024, 6, 13, 12, 30, 0, 0, time.UTC)}
	svc := newTestPickService(store, clock)

	_, err := svc.Submit(context.Background(), testMember(), openTournament(), "SCHES0100")
	assert.ErrorIs(t, err, ErrDeadlinePassed)

	history, _ := svc.History(context.Background(), testMember().ID)
	assert.Empty(t, history, "a rejected submission must not land in the ledger")
}

func TestSubmit_BeforeWindowOpens(t *testing.T) {
	store := &memPickStore{}
	// Sunday before the pick week; window opens Monday 17:00 local.
	clock := FixedClock{Instant: time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)}
	svc := newTestPickService(store, clock)

	// Submission before open is still before close, so the ledger
	// accepts it; the window close is the only hard deadline.
	_, err := svc.Submit(context.Background(), testMember(), openTournament(), "SCHES0100")
	require.NoError(t, err)
}

func TestSubmit_RetriesConflictOnce(t *testing.T) {
	store := &memPickStore{conflicts: 1}
	clock := &steppingClock{t: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), step: time.Second}
	svc := newTestPickService(store, clock)

	pick, err := svc.Submit(context.Background(), testMember(), openTournament(), "SCHES0100")
	require.NoError(t, err)
	assert.True(t, pick.IsMostRecent)
}

func TestSubmit_SecondConflictSurfaces(t *testing.T) {
	store := &memPickStore{conflicts: 2}
	clock := &steppingClock{t: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), step: time.Second}
	svc := newTestPickService(store, clock)

	_, err := svc.Submit(context.Background(), testMember(), openTournament(), "SCHES0100")
	assert.ErrorIs(t, err, ErrWriteConflict)
}

func TestSubmit_FirstPickRaceResolvesToOneCurrentRow(t *testing.T) {
	store := &memPickStore{}
	clock := &steppingClock{t: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), step: time.Second}
	svc := newTestPickService(store, clock)

	member := testMember()
	tour := openTournament()

	// A concurrent first submission commits between our scan, which
	// found no current row to lock, and our insert. The unique index on
	// the current row rejects the duplicate and the retry sees the
	// winner as prev.
	store.beforeInsert = func(s *memPickStore) {
		s.nextID++
		s.rows = append(s.rows, models.Pick{
			ID:             s.nextID,
			LeagueMemberID: member.ID,
			TournamentID:   tour.ID,
			GolferID:       "MCILR0100",
			TimestampUTC:   time.Date(2024, 6, 11, 11, 0, 0, 0, time.UTC),
			IsMostRecent:   true,
		})
	}

	pick, err := svc.Submit(context.Background(), member, tour, "SCHES0100")
	require.NoError(t, err)
	assert.Equal(t, "SCHES0100", pick.GolferID)

	history, err := svc.History(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	mostRecent := 0
	for _, row := range history {
		if row.IsMostRecent {
			mostRecent++
		}
	}
	assert.Equal(t, 1, mostRecent, "racing first picks must resolve to a single current row")
}

func TestSubmit_NonAdvancingClockRejected(t *testing.T) {
	store := &memPickStore{}
	clock := FixedClock{Instant: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC)}
	svc := newTestPickService(store, clock)

	member := testMember()
	tour := openTournament()

	_, err := svc.Submit(context.Background(), member, tour, "SCHES0100")
	require.NoError(t, err)

	// The frozen clock hands the second submit the same timestamp;
	// the ledger must refuse to record a non-advancing write.
	_, err = svc.Submit(context.Background(), member, tour, "MCILR0100")
	assert.ErrorIs(t, err, ErrStaleTimestamp)

	current, err := svc.MostRecent(context.Background(), member.ID, tour.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "SCHES0100", current.GolferID, "failed write must not supersede the prior pick")
}

func TestSubmit_ConcurrentWritersKeepLedgerConsistent(t *testing.T) {
	store := &memPickStore{}
	clock := &steppingClock{t: time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), step: time.Millisecond}
	svc := newTestPickService(store, clock)

	member := testMember()
	tour := openTournament()

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Submit(context.Background(), member, tour, "SCHES0100")
		}()
	}
	wg.Wait()

	history, err := svc.History(context.Background(), member.ID)
	require.NoError(t, err)

	mostRecent := 0
	var last time.Time
	for _, row := range history {
		if row.IsMostRecent {
			mostRecent++
		}
		assert.True(t, row.TimestampUTC.After(last))
		last = row.TimestampUTC
	}
	assert.Equal(t, 1, mostRecent)
}

func TestSubmitManual_Backdates(t *testing.T) {
	store := &memPickStore{}
	clock := FixedClock{Instant: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestPickService(store, clock)

	member := testMember()
	tour := openTournament()

	pick, err := svc.SubmitManual(context.Background(), member, tour, "SCHES0100")
	require.NoError(t, err)

	// Midnight UTC the day before the start date.
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), pick.TimestampUTC)
	assert.True(t, pick.IsMostRecent)
}

func TestSubmitManual_OverNewerPickFallsForward(t *testing.T) {
	store := &memPickStore{}
	clock := &steppingClock{t: time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC), step: time.Second}
	svc := newTestPickService(store, clock)

	member := testMember()
	tour := openTournament()

	// Member picked normally after the backdate point.
	_, err := svc.Submit(context.Background(), member, tour, "MCILR0100")
	require.NoError(t, err)

	pick, err := svc.SubmitManual(context.Background(), member, tour, "SCHES0100")
	require.NoError(t, err)

	history, _ := svc.History(context.Background(), member.ID)
	require.Len(t, history, 2)
	assert.True(t, pick.TimestampUTC.After(history[0].TimestampUTC),
		"manual entry over a newer pick takes the clock timestamp instead")
	assert.Equal(t, "SCHES0100", pick.GolferID)
}
