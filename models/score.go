// models/score.go
package models

// LeagueMemberTournamentScore is the externally computed score for one
// member/tournament pair. Score is in hundredths of a point (550 =
// 5.50 points). By upstream convention a negative value marks a missed
// pick and a value of 10000 or more marks a win; this service reads
// the convention, it never derives it.
type LeagueMemberTournamentScore struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	LeagueMemberID  uint          `gorm:"not null;index:idx_scores_member_tournament,unique" json:"league_member_id"`
	LeagueMember    *LeagueMember `gorm:"foreignKey:LeagueMemberID" json:"league_member,omitempty"`
	TournamentID    uint          `gorm:"not null;index:idx_scores_member_tournament,unique" json:"tournament_id"`
	Tournament      *Tournament   `gorm:"foreignKey:TournamentID" json:"tournament,omitempty"`
	Score           int           `gorm:"not null;default:0" json:"score"`
	IsNoPick        bool          `gorm:"not null;default:false" json:"is_no_pick"`
	IsDuplicatePick bool          `gorm:"not null;default:false" json:"is_duplicate_pick"`
}

// ScoringRule maps a finish-position range to a point value. Owned by
// the scoring job; exposed read-only for the commissioner UI.
type ScoringRule struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	StartPosition int  `gorm:"not null" json:"start_position"`
	EndPosition   int  `gorm:"not null" json:"end_position"`
	Points        int  `gorm:"not null" json:"points"`
}

func (LeagueMemberTournamentScore) TableName() string {
	return "league_member_tournament_scores"
}

func (ScoringRule) TableName() string {
	return "scoring_rules"
}
