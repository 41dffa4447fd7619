package models

import "gorm.io/gorm"

type Supply struct {
	gorm.Model

	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (s Supply) String() string {
	return s.Name
}
