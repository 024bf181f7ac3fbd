package team

import "gorm.io/gorm"

// Team represents a cricket team players can join before starting matches.
// The record counters are maintained by admins for display; match scoring
// never writes them.
type Team struct {
	gorm.Model
	Name    string `json:"name" gorm:"uniqueIndex;not null"`
	TagLine string `json:"tag_line"`
	Scores  int    `json:"scores" gorm:"default:0"`
	Wins    int    `json:"wins" gorm:"default:0"`
	Draws   int    `json:"draws" gorm:"default:0"`
	Losts   int    `json:"losts" gorm:"default:0"`
}
