package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model

	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (c Category) String() string {
	return c.Name
}
