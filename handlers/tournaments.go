// handlers/tournaments.go
package handlers

import (
	"fairway/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetUpcomingTournament returns the league's next tournament, falling
// back to the most recent one when the season has no more stops.
func GetUpcomingTournament(c *fiber.Ctx) error {
	leagueID, err := c.ParamsInt("leagueId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid league id"})
	}

	info, err := tournSvc.Upcoming(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}
	if info != nil {
		return c.JSON(fiber.Map{"success": true, "has_tournament": true, "data": info})
	}

	recent, err := tournSvc.MostRecent(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}
	if recent == nil {
		return c.JSON(fiber.Map{
			"success":        true,
			"has_tournament": false,
			"message":        "No tournaments found",
		})
	}
	return c.JSON(fiber.Map{
		"success":        true,
		"has_tournament": false,
		"message":        "No upcoming tournaments, season is over",
		"most_recent":    recent,
	})
}

// GetMostRecentTournament returns the league's latest started tournament.
func GetMostRecentTournament(c *fiber.Ctx) error {
	leagueID, err := c.ParamsInt("leagueId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid league id"})
	}

	info, err := tournSvc.MostRecent(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}
	if info == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "No recent tournament found"})
	}
	return c.JSON(fiber.Map{"success": true, "data": info})
}

// GetRoster returns the current field snapshot for a tournament.
func GetRoster(c *fiber.Ctx) error {
	tournamentID, err := c.ParamsInt("tournamentId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid tournament id"})
	}

	field, err := tournSvc.Roster(uint(tournamentID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"tournament_id": tournamentID,
		"roster":        field,
	})
}

// GetDropdown returns the golfer selector for the caller's membership
// and a tournament: field membership plus already-picked flags.
func GetDropdown(c *fiber.Ctx) error {
	memberID, err := c.ParamsInt("memberId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid member id"})
	}
	tournamentID := c.QueryInt("tournament_id")
	if tournamentID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "tournament_id is required"})
	}

	member, err := leagueSvc.Member(uint(memberID), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	golfers, err := tournSvc.Dropdown(uint(tournamentID), member.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"ids":     fiber.Map{"tournament_id": tournamentID},
		"golfers": golfers,
	})
}
