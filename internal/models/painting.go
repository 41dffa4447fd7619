package models

import (
	"time"

	"gorm.io/gorm"
)

type Painting struct {
	gorm.Model

	Title      string    `gorm:"not null"`
	CreateDate time.Time `gorm:"not null"`
	Link       string
	Image      string
	UserID     uint `gorm:"not null;index"`

	// Relationships
	User       User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Categories []Category `gorm:"many2many:painting_categories;constraint:OnDelete:CASCADE"`
	Supplies   []Supply   `gorm:"many2many:painting_supplies;constraint:OnDelete:CASCADE"`
}

func (p Painting) String() string {
	return p.Title
}
