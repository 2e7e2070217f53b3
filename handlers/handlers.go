// handlers/handlers.go - Shared handler wiring
package handlers

import (
	"errors"

	"fairway/database"
	"fairway/services"

	"github.com/gofiber/fiber/v2"
)

var (
	clock       services.Clock
	windows     *services.WindowResolver
	leagueSvc   *services.LeagueService
	pickSvc     *services.PickService
	tournSvc    *services.TournamentService
	historySvc  *services.HistoryService
	leaderSvc   *services.LeaderboardService
	fieldSvc    *services.FieldService

	memberSource membershipSource
)

// membershipSource is the slice of the league service the membership
// gate reads; tests substitute it.
type membershipSource interface {
	Memberships(userID uint) ([]services.MembershipInfo, error)
}

// Init wires every handler against the shared database connection.
// Called once from main after database.InitDB.
func Init() {
	db := database.GetDB()

	clock = services.SystemClock{}
	windows = services.NewWindowResolver(clock)
	navigator := services.NewScheduleNavigator(windows)

	leagueSvc = services.NewLeagueService(db, clock)
	memberSource = leagueSvc
	pickSvc = services.NewPickService(database.NewPickStore(db), windows, clock)
	tournSvc = services.NewTournamentService(db, navigator, windows, clock)
	historySvc = services.NewHistoryService(db, windows, clock)
	leaderSvc = services.NewLeaderboardService(db)
	fieldSvc = services.NewFieldService(db, clock)
}

// serviceError maps service-layer errors onto HTTP responses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDeadlinePassed):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false, "error": "Tournament has already started",
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "Not found",
		})
	case errors.Is(err, services.ErrWriteConflict), errors.Is(err, services.ErrStaleTimestamp):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false, "error": "Pick could not be saved, please retry",
		})
	case errors.Is(err, services.ErrUnknownZone):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Tournament has an invalid time zone",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Internal server error",
		})
	}
}
