package game

import (
	"errors"

	"gorm.io/gorm"
)

// ErrVersionConflict means a concurrent ball submission won the save race.
// The caller should reload the match and re-apply.
var ErrVersionConflict = errors.New("match was modified concurrently")

// GameRepository defines methods to interact with match data.
type GameRepository interface {
	CreateMatch(m *Match) error
	// GetActiveMatchForPlayer returns the in-progress match with the given
	// code owned by the given player, or (nil, nil) when no such match
	// exists. Scoping the lookup by player means one user can never score
	// against another user's match.
	GetActiveMatchForPlayer(matchCode string, playerID uint) (*Match, error)
	// SaveBallUpdate persists the overs/status of a match with a
	// compare-and-swap on the version column. Returns ErrVersionConflict
	// when the stored version no longer matches.
	SaveBallUpdate(m *Match) error
	GetMatchesByPlayer(playerID uint) ([]Match, error)
	GetMatchesByTeam(teamID uint) ([]Match, error)
}

// GormGameRepository implements GameRepository using GORM.
type GormGameRepository struct {
	db *gorm.DB
}

// NewGormGameRepository creates a new GormGameRepository.
func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) CreateMatch(m *Match) error {
	return r.db.Create(m).Error
}

func (r *GormGameRepository) GetActiveMatchForPlayer(matchCode string, playerID uint) (*Match, error) {
	var m Match
	result := r.db.Where("match_code = ? AND player_id = ? AND status = ?", matchCode, playerID, StatusInProgress).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &m, nil
}

// SaveBallUpdate writes the mutated overs tree back with an optimistic
// version check. The original read-modify-write had a lost-update race
// between concurrent submissions for the same match; the WHERE version
// guard closes it.
func (r *GormGameRepository) SaveBallUpdate(m *Match) error {
	result := r.db.Model(&Match{}).
		Where("id = ? AND version = ?", m.ID, m.Version).
		Updates(map[string]interface{}{
			"overs":   m.Overs,
			"status":  m.Status,
			"version": m.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	m.Version++
	return nil
}

func (r *GormGameRepository) GetMatchesByPlayer(playerID uint) ([]Match, error) {
	var matches []Match
	if err := r.db.Where("player_id = ?", playerID).Order("created_at DESC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *GormGameRepository) GetMatchesByTeam(teamID uint) ([]Match, error) {
	var matches []Match
	if err := r.db.Where("team_id = ?", teamID).Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}
