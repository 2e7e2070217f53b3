// handlers/picks.go
package handlers

import (
	"fairway/middleware"

	"github.com/gofiber/fiber/v2"
)

type SubmitPickRequest struct {
	LeagueMemberID uint   `json:"league_member_id"`
	TournamentID   uint   `json:"tournament_id"`
	GolferID       string `json:"golfer_id"`
}

// SubmitPick records a pick for the authenticated member. The window
// check and ledger discipline live in the service; this handler only
// verifies the membership belongs to the caller.
func SubmitPick(c *fiber.Ctx) error {
	var req SubmitPickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.LeagueMemberID == 0 || req.TournamentID == 0 || req.GolferID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "league_member_id, tournament_id and golfer_id are required"})
	}

	member, err := leagueSvc.Member(req.LeagueMemberID, middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	tournament, err := tournSvc.Tournament(req.TournamentID)
	if err != nil {
		return serviceError(c, err)
	}

	pick, err := pickSvc.Submit(c.Context(), member, tournament, req.GolferID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "pick": pick})
}

// GetCurrentPick returns the member's active pick for a tournament.
// No pick is a normal state, not an error.
func GetCurrentPick(c *fiber.Ctx) error {
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

	pick, err := pickSvc.MostRecent(c.Context(), member.ID, uint(tournamentID))
	if err != nil {
		return serviceError(c, err)
	}
	if pick == nil {
		return c.JSON(fiber.Map{
			"success":  true,
			"has_pick": false,
			"message":  "No pick found for this tournament",
		})
	}

	return c.JSON(fiber.Map{"success": true, "has_pick": true, "pick": pick})
}

// GetPickHistory returns the reconciled season history and summary for
// one of the caller's memberships.
func GetPickHistory(c *fiber.Ctx) error {
	memberID, err := c.ParamsInt("memberId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid member id"})
	}

	member, err := leagueSvc.Member(uint(memberID), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	entries, summary, err := historySvc.MemberHistory(member.ID)
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
