package services

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/types"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// Create registers a team and enrolls the creator as an admin member in
// the same transaction.
func (s *TeamService) Create(creatorID uint, name string, settings datatypes.JSON) (*models.Team, error) {
	var existing models.Team

	err := s.db.Where("name = ?", name).First(&existing).Error

	if err == nil {
		return nil, ErrTeamExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	team := models.Team{
		Name:        name,
		CreatedByID: creatorID,
		IsActive:    true,
		Settings:    settings,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		membership := models.TeamMembership{
			TeamID:   team.ID,
			UserID:   creatorID,
			Role:     types.RoleAdmin,
			JoinedAt: time.Now(),
			IsActive: true,
		}

		return tx.Create(&membership).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTeamExists
		}
		return nil, err
	}

	return &team, nil
}

// Join adds the user as a plain member. It is idempotent: an existing
// membership is returned unchanged, and a concurrent join that loses the
// race to the unique index picks up the winner's row.
func (s *TeamService) Join(teamID, userID uint) (*models.TeamMembership, error) {
	var team models.Team

	if err := s.db.Where("id = ? AND is_active = ?", teamID, true).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	var membership models.TeamMembership

	err := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&membership).Error

	if err == nil {
		return &membership, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	membership = models.TeamMembership{
		TeamID:   teamID,
		UserID:   userID,
		Role:     types.RoleMember,
		JoinedAt: time.Now(),
		IsActive: true,
	}

	if err := s.db.Create(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if retryErr := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&membership).Error; retryErr == nil {
				return &membership, nil
			}
		}
		return nil, err
	}

	return &membership, nil
}

// ListForUser returns the teams the user is an active member of.
func (s *TeamService) ListForUser(userID uint) ([]models.Team, error) {
	var teams []models.Team

	err := s.db.
		Joins("JOIN team_memberships ON team_memberships.team_id = teams.id").
		Where("team_memberships.user_id = ? AND team_memberships.is_active = ? AND team_memberships.deleted_at IS NULL", userID, true).
		Where("teams.is_active = ?", true).
		Order("teams.name").
		Find(&teams).Error

	if err != nil {
		return nil, err
	}

	return teams, nil
}

// GetForUser returns the team only if the user is an active member.
func (s *TeamService) GetForUser(teamID, userID uint) (*models.Team, error) {
	if _, err := s.Membership(teamID, userID); err != nil {
		if errors.Is(err, ErrNotTeamMember) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	var team models.Team

	err := s.db.
		Preload("TeamMemberships").
		Where("id = ? AND is_active = ?", teamID, true).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// Membership returns the user's active membership in the team.
func (s *TeamService) Membership(teamID, userID uint) (*models.TeamMembership, error) {
	var membership models.TeamMembership

	err := s.db.
		Where("team_id = ? AND user_id = ? AND is_active = ?", teamID, userID, true).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotTeamMember
		}
		return nil, err
	}

	return &membership, nil
}
