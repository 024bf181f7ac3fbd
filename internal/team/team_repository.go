package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines methods to interact with team data.
type TeamRepository interface {
	CreateTeam(t *Team) error
	GetAllTeams() ([]Team, error)
	// GetTeamByID returns (nil, nil) when no team exists with the given ID.
	GetTeamByID(id uint) (*Team, error)
	// GetTeamByName returns (nil, nil) when no team exists with the given name.
	GetTeamByName(name string) (*Team, error)
}

// GormTeamRepository implements TeamRepository using GORM.
type GormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GormTeamRepository.
func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

func (r *GormTeamRepository) CreateTeam(t *Team) error {
	return r.db.Create(t).Error
}

func (r *GormTeamRepository) GetAllTeams() ([]Team, error) {
	var teams []Team
	if err := r.db.Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *GormTeamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	result := r.db.First(&t, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &t, nil
}

func (r *GormTeamRepository) GetTeamByName(name string) (*Team, error) {
	var t Team
	result := r.db.Where("name = ?", name).First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &t, nil
}
