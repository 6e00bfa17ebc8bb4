package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string  `json:"name"`
	Type        string  `gorm:"size:32;default:fundive" json:"type"` // fundive | course
	LeaderID    *string `gorm:"column:leader_id;size:36;index" json:"leader_id,omitempty"`
	CourseID    *string `gorm:"column:course_id;size:36;index" json:"course_id,omitempty"`
	Days        *int    `json:"days,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Type == "" {
		g.Type = "fundive"
	}
	return nil
}

type GroupMember struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`

	GroupID string `gorm:"column:group_id;size:36;index" json:"group_id"`
	DiverID string `gorm:"column:diver_id;size:36;index" json:"diver_id"`
	Role    string `gorm:"size:64" json:"role,omitempty"`
}

func (m *GroupMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// One itinerary entry per (group_id, day_number); enforced by the unique index
// and the check-then-insert-or-update path in GroupService.
type GroupItinerary struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GroupID    string  `gorm:"column:group_id;size:36;uniqueIndex:idx_group_day" json:"group_id"`
	DayNumber  int     `gorm:"column:day_number;uniqueIndex:idx_group_day" json:"day_number"`
	DiveSiteID *string `gorm:"column:dive_site_id;size:36;index" json:"dive_site_id,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

func (GroupItinerary) TableName() string { return "group_dive_itinerary" }

func (it *GroupItinerary) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return nil
}
