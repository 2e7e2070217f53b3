// services/league_service.go - League and membership business logic
package services

import (
	"errors"
	"time"

	"fairway/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeagueService struct {
	db    *gorm.DB
	clock Clock
}

func NewLeagueService(db *gorm.DB, clock Clock) *LeagueService {
	return &LeagueService{db: db, clock: clock}
}

// CreateLeague creates a league with the creator as commissioner, in
// one transaction so a league never exists without its first member.
func (s *LeagueService) CreateLeague(name, scoringFormat string, creatorID uint, scheduleID *uint) (*models.League, error) {
	if name == "" {
		return nil, errors.New("league name is required")
	}
	if scoringFormat == "" {
		scoringFormat = "standard"
	}

	league := &models.League{
		Name:           name,
		ScoringFormat:  scoringFormat,
		CommissionerID: creatorID,
		ScheduleID:     scheduleID,
		IsActive:       true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(league).Error; err != nil {
			return err
		}
		member := &models.LeagueMember{
			LeagueID: league.ID,
			UserID:   creatorID,
			Role:     models.RoleCommissioner,
			JoinedAt: s.clock.Now(),
		}
		return tx.Create(member).Error
	})
	if err != nil {
		return nil, err
	}
	return league, nil
}

// MembershipInfo is one league a user belongs to.
type MembershipInfo struct {
	LeagueMemberID uint        `json:"league_member_id"`
	LeagueID       uint        `json:"league_id"`
	LeagueName     string      `json:"league_name"`
	Role           models.Role `json:"role"`
	IsActive       bool        `json:"is_active"`
}

// Memberships lists every league membership for a user.
func (s *LeagueService) Memberships(userID uint) ([]MembershipInfo, error) {
	var infos []MembershipInfo
	err := s.db.Model(&models.LeagueMember{}).
		Select("league_members.id AS league_member_id, leagues.id AS league_id, leagues.name AS league_name, league_members.role AS role, leagues.is_active AS is_active").
		Joins("JOIN leagues ON leagues.id = league_members.league_id").
		Where("league_members.user_id = ?", userID).
		Scan(&infos).Error
	return infos, err
}

// Member loads one membership and verifies it belongs to the user, so
// a caller cannot submit picks through someone else's membership.
func (s *LeagueService) Member(memberID, userID uint) (*models.LeagueMember, error) {
	var member models.LeagueMember
	err := s.db.Preload("League").First(&member, memberID).Error
	if err != nil {
		return nil, ErrNotFound
	}
	if member.UserID != userID {
		return nil, ErrNotFound
	}
	return &member, nil
}

// IsCommissioner reports whether the user runs the league.
func (s *LeagueService) IsCommissioner(userID, leagueID uint) bool {
	var count int64
	s.db.Model(&models.LeagueMember{}).
		Where("user_id = ? AND league_id = ? AND role = ?", userID, leagueID, models.RoleCommissioner).
		Count(&count)
	return count > 0
}

// CreateInviteCode mints an invite code for a league. Expiry and max
// uses are optional.
func (s *LeagueService) CreateInviteCode(leagueID uint, role models.Role, expiresAt *time.Time, maxUses *int) (*models.LeagueInviteCode, error) {
	if role == "" {
		role = models.RolePlayer
	}
	invite := &models.LeagueInviteCode{
		Code:      uuid.New().String(),
		LeagueID:  leagueID,
		Role:      role,
		ExpiresAt: expiresAt,
		MaxUses:   maxUses,
	}
	if err := s.db.Create(invite).Error; err != nil {
		return nil, err
	}
	return invite, nil
}

// RedeemInviteCode joins a user to a league through an invite code.
// Expired or exhausted codes and duplicate memberships are rejected.
// Membership and usage rows land in one transaction.
func (s *LeagueService) RedeemInviteCode(code string, userID uint) (*models.LeagueMember, error) {
	var invite models.LeagueInviteCode
	if err := s.db.Where("code = ?", code).First(&invite).Error; err != nil {
		return nil, ErrNotFound
	}

	now := s.clock.Now()
	if invite.ExpiresAt != nil && invite.ExpiresAt.Before(now) {
		return nil, errors.New("invite code has expired")
	}

	if invite.MaxUses != nil {
		var used int64
		s.db.Model(&models.InviteCodeUsage{}).Where("invite_code_id = ?", invite.ID).Count(&used)
		if used >= int64(*invite.MaxUses) {
			return nil, errors.New("invite code has reached maximum uses")
		}
	}

	var existing int64
	s.db.Model(&models.LeagueMember{}).
		Where("user_id = ? AND league_id = ?", userID, invite.LeagueID).
		Count(&existing)
	if existing > 0 {
		return nil, errors.New("already a member of this league")
	}

	member := &models.LeagueMember{
		LeagueID: invite.LeagueID,
		UserID:   userID,
		Role:     invite.Role,
		JoinedAt: now,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		usage := &models.InviteCodeUsage{
			InviteCodeID: invite.ID,
			UserID:       userID,
			UsedAt:       now,
		}
		return tx.Create(usage).Error
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// LeagueMembers lists a league's members with their users preloaded,
// ordered by name for the commissioner's manual-pick form.
func (s *LeagueService) LeagueMembers(leagueID uint) ([]models.LeagueMember, error) {
	var members []models.LeagueMember
	err := s.db.Preload("User").
		Joins("JOIN users ON users.id = league_members.user_id").
		Where("league_members.league_id = ?", leagueID).
		Order("users.last_name, users.first_name").
		Find(&members).Error
	return members, err
}
