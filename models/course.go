package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	DurationDays *int       `gorm:"column:duration_days" json:"duration_days,omitempty"`
	Description  string     `json:"description,omitempty"`
	InstructorID *string    `gorm:"column:instructor_id;size:36;index" json:"instructor_id,omitempty"`
	BoatID       *string    `gorm:"column:boat_id;size:36;index" json:"boat_id,omitempty"`
	StartDate    *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	MaxStudents  int        `gorm:"column:max_students;default:6" json:"max_students"`

	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"-"`
	Boat       *Boat       `gorm:"foreignKey:BoatID" json:"-"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.MaxStudents == 0 {
		c.MaxStudents = 6
	}
	return nil
}
