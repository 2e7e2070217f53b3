// handlers/league_picks.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetLeagueCurrentPicks returns the current-week pick grid: the live
// (or latest started) tournament and every member's active pick for it.
func GetLeagueCurrentPicks(c *fiber.Ctx) error {
	leagueID, err := c.ParamsInt("leagueId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid league id"})
	}

	if !isLeagueMember(c, uint(leagueID)) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "League not found"})
	}

	week, err := tournSvc.CurrentWeekPicks(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}
	if week == nil {
		return c.JSON(fiber.Map{
			"success":        true,
			"has_tournament": false,
			"message":        "No tournament has started yet",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"has_tournament": true,
		"data":           week,
	})
}

// GetSchedule returns the league's full season schedule with window
// state for every stop.
func GetSchedule(c *fiber.Ctx) error {
	leagueID, err := c.ParamsInt("leagueId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid league id"})
	}

	if !isLeagueMember(c, uint(leagueID)) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "League not found"})
	}

	entries, err := tournSvc.ScheduleEntries(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "schedule": entries})
}
