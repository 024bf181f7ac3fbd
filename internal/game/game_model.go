package game

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusInProgress MatchStatus = "in-progress"
	StatusCompleted  MatchStatus = "completed"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Ball is one discrete scoring event within an over.
type Ball struct {
	BallNumber int      `json:"ball_number"`
	Runs       int      `json:"runs"`
	Wicket     bool     `json:"wicket"`
	Angle      *float64 `json:"angle,omitempty"` // bat swing telemetry, no scoring effect
}

// Over groups up to six sequential balls.
type Over struct {
	OverNumber int    `json:"over_number"`
	Balls      []Ball `json:"balls"`
}

// Overs is the full bowling history of a match, stored as a JSONB column.
type Overs []Over

func (o Overs) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// Scan unmarshals a JSONB column into the slice.
func (o *Overs) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Overs: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, o)
}

// Match is one game instance for a single player. The overs tree is
// append-only; status moves from in-progress to completed exactly once and
// the row is never deleted, so historical matches keep feeding stats.
type Match struct {
	gorm.Model
	MatchCode       string          `json:"match_code" gorm:"uniqueIndex;not null"`
	PlayerID        uint            `json:"player_id" gorm:"index;not null"`
	TeamID          uint            `json:"team_id" gorm:"index;not null"`
	TeamName        string          `json:"team_name"` // snapshot of the team's name at match start
	DifficultyLevel DifficultyLevel `json:"difficulty_level" gorm:"default:'medium'"`
	OversLimit      int             `json:"no_of_overs" gorm:"not null"`
	TargetRuns      int             `json:"target_runs" gorm:"not null"`
	Overs           Overs           `json:"overs" gorm:"type:jsonb;default:'[]'"`
	Status          MatchStatus     `json:"status" gorm:"index;default:'in-progress'"`
	Version         int             `json:"-" gorm:"not null;default:0"` // bumped on every ball write, guards against lost updates
}

// NewMatchCode returns a fresh externally visible match code. The MATCH
// prefix is kept for API clients; the UUID body makes collisions a
// non-concern.
func NewMatchCode() string {
	return "MATCH" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
