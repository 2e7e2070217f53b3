// handlers/commish.go - Commissioner tools
package handlers

import (
	"errors"
	"time"

	"fairway/database"
	"fairway/middleware"
	"fairway/models"
	"fairway/services"

	"github.com/gofiber/fiber/v2"
)

type CreateInviteCodeRequest struct {
	LeagueID  uint        `json:"league_id"`
	Role      models.Role `json:"role"`
	ExpiresAt *time.Time  `json:"expires_at"`
	MaxUses   *int        `json:"max_uses"`
}

// CreateInviteCode mints an invite code. Commissioner only.
func CreateInviteCode(c *fiber.Ctx) error {
	var req CreateInviteCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.LeagueID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "league_id is required"})
	}

	if !leagueSvc.IsCommissioner(middleware.UserID(c), req.LeagueID) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Commissioner access required"})
	}

	invite, err := leagueSvc.CreateInviteCode(req.LeagueID, req.Role, req.ExpiresAt, req.MaxUses)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "invite_code": invite})
}

type RedeemInviteCodeRequest struct {
	Code string `json:"code"`
}

// RedeemInviteCode joins the caller to a league through an invite code.
func RedeemInviteCode(c *fiber.Ctx) error {
	var req RedeemInviteCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Code == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "code is required"})
	}

	member, err := leagueSvc.RedeemInviteCode(req.Code, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Invite code not found"})
		}
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "membership": member})
}

// GetManualPickData returns everything the manual-pick form needs:
// the league's members, the season schedule, and the golfer list.
func GetManualPickData(c *fiber.Ctx) error {
	leagueID, err := c.ParamsInt("leagueId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid league id"})
	}

	if !leagueSvc.IsCommissioner(middleware.UserID(c), uint(leagueID)) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Commissioner access required"})
	}

	members, err := leagueSvc.LeagueMembers(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}

	entries, err := tournSvc.ScheduleEntries(uint(leagueID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"members":  members,
			"schedule": entries,
		},
	})
}

type ManualPickRequest struct {
	LeagueMemberID uint   `json:"league_member_id"`
	TournamentID   uint   `json:"tournament_id"`
	GolferID       string `json:"golfer_id"`
}

// CreateManualPick records a commissioner-entered pick on a member's
// behalf. The entry is backdated so it reads as made before the
// tournament started, but it still lands as a fresh ledger row.
func CreateManualPick(c *fiber.Ctx) error {
	var req ManualPickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.LeagueMemberID == 0 || req.TournamentID == 0 || req.GolferID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "league_member_id, tournament_id and golfer_id are required"})
	}

	var member models.LeagueMember
	if err := database.GetDB().First(&member, req.LeagueMemberID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "League member not found"})
	}

	if !leagueSvc.IsCommissioner(middleware.UserID(c), member.LeagueID) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Commissioner access required"})
	}

	tournament, err := tournSvc.Tournament(req.TournamentID)
	if err != nil {
		return serviceError(c, err)
	}

	pick, err := pickSvc.SubmitManual(c.Context(), &member, tournament, req.GolferID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "pick": pick})
}

type FieldSnapshotRequest struct {
	TournamentID uint   `json:"tournament_id"`
	Year         int    `json:"year"`
	Players      []struct {
		Name        string `json:"name"`
		IsAlternate bool   `json:"is_alternate"`
		IsInjured   bool   `json:"is_injured"`
	} `json:"players"`
}

// ApplyFieldSnapshot replaces a tournament's field with a new snapshot.
// Admin only; the ingestion job calls this with the decoded feed.
func ApplyFieldSnapshot(c *fiber.Ctx) error {
	var req FieldSnapshotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.TournamentID == 0 || req.Year == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "tournament_id and year are required"})
	}

	players := make([]services.FieldPlayer, 0, len(req.Players))
	for _, p := range req.Players {
		players = append(players, services.FieldPlayer{
			Name:        p.Name,
			IsAlternate: p.IsAlternate,
			IsInjured:   p.IsInjured,
		})
	}

	inserted, err := fieldSvc.ApplySnapshot(req.TournamentID, req.Year, players)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"tournament_id": req.TournamentID,
		"inserted":      inserted,
	})
}
