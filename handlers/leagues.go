// handlers/leagues.go
package handlers

import (
	"fairway/database"
	"fairway/middleware"
	"fairway/models"

	"github.com/gofiber/fiber/v2"
)

type CreateLeagueRequest struct {
	Name          string `json:"name"`
	ScoringFormat string `json:"scoring_format"`
	ScheduleID    *uint  `json:"schedule_id"`
}

// CreateLeague creates a league with the caller as commissioner.
func CreateLeague(c *fiber.Ctx) error {
	var req CreateLeagueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	league, err := leagueSvc.CreateLeague(req.Name, req.ScoringFormat, middleware.UserID(c), req.ScheduleID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "league": league})
}

// GetMyLeagues lists the caller's league memberships.
func GetMyLeagues(c *fiber.Ctx) error {
	memberships, err := leagueSvc.Memberships(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "leagues": memberships})
}

// GetScoreboard returns the ranked leaderboard for a league the caller
// belongs to. Points convert from hundredths at this edge.
func GetScoreboard(c *fiber.Ctx) error {
	leagueID, err := c.ParamsInt("leagueId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid league id"})
	}

	if !isLeagueMember(c, uint(leagueID)) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "League not found"})
	}

	rows, err := leaderSvc.Leaderboard(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}

	type scoreboardRow struct {
		Rank           int     `json:"rank"`
		Name           string  `json:"name"`
		Score          float64 `json:"score"`
		LeagueMemberID uint    `json:"leagueMemberId"`
		Wins           int     `json:"wins"`
		MissedPicks    int     `json:"missedPicks"`
	}
	out := make([]scoreboardRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, scoreboardRow{
			Rank:           r.Rank,
			Name:           r.DisplayName,
			Score:          float64(r.TotalPoints) / 100,
			LeagueMemberID: r.LeagueMemberID,
			Wins:           r.Wins,
			MissedPicks:    r.MissedPicks,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"leaderboard": out},
	})
}

// GetMemberHistory returns the pick history for any member of a league
// the caller also belongs to (scoreboard drill-down).
func GetMemberHistory(c *fiber.Ctx) error {
	memberID, err := c.ParamsInt("memberId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid member id"})
	}

	var member models.LeagueMember
	if err := database.GetDB().First(&member, memberID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Member not found"})
	}
	if !isLeagueMember(c, member.LeagueID) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Member not found"})
	}

	entries, summary, err := historySvc.MemberHistory(uint(memberID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"picks":   entries,
			"summary": summary,
		},
	})
}

func isLeagueMember(c *fiber.Ctx, leagueID uint) bool {
	memberships, err := memberSource.Memberships(middleware.UserID(c))
	if err != nil {
		return false
	}
	for _, m := range memberships {
		if m.LeagueID == leagueID {
			return true
		}
	}
	return false
}
