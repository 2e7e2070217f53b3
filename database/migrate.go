// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"fairway/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.League{},
		&models.LeagueMember{},
		&models.Schedule{},
		&models.ScheduleTournament{},
		&models.Tournament{},
		&models.Golfer{},
		&models.TournamentGolfer{},
		&models.TournamentGolferResult{},
		&models.Pick{},
		&models.LeagueMemberTournamentScore{},
		&models.ScoringRule{},
		&models.LeagueInviteCode{},
		&models.InviteCodeUsage{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes AutoMigrate does not derive from tags
func createIndexes() {
	db := GetDB()

	// The ledger's hot path: current pick lookup per member/tournament.
	// UNIQUE so two first submissions racing past the FOR UPDATE scan
	// (nothing to lock on when no prior row exists) cannot both commit
	// a current row; the loser's insert fails 23505 and retries.
	db.Exec("DROP INDEX IF EXISTS idx_picks_current")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_picks_current ON picks(league_member_id, tournament_id) WHERE is_most_recent")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_picks_timestamp ON picks(timestamp_utc DESC)")

	// Roster snapshot lookups
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tournament_golfers_current ON tournament_golfers(tournament_id) WHERE is_most_recent")

	// Schedule scans
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tournaments_start ON tournaments(start_date, start_time)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_schedule_tournaments_schedule ON schedule_tournaments(schedule_id, week_number)")

	log.Println("✅ Indexes created successfully")
}
