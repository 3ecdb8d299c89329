package store

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Customer struct {
	CustomerID    uint            `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	NonRoamableID string          `gorm:"column:non_roamable_id;size:128;not null;uniqueIndex" json:"non_roamable_id" validate:"required,max=128"`
	FirstName     string          `gorm:"column:first_name;size:50;not null" json:"first_name" validate:"required,max=50"`
	LastName      string          `gorm:"column:last_name;size:50;not null" json:"last_name" validate:"required,max=50"`
	DateEnlisted  time.Time       `gorm:"column:date_enlisted;not null" json:"date_enlisted"`
	BirthDate     *datatypes.Date `gorm:"column:birth_date" json:"birth_date,omitempty"`
	Email         string          `gorm:"column:email;size:50" json:"email,omitempty" validate:"omitempty,email,max=50"`

	Orders       []*Order      `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	ShoppingCart *ShoppingCart `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) IdentityKey() uint { return c.CustomerID }

func (c *Customer) String() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.DateEnlisted.IsZero() {
		c.DateEnlisted = time.Now().UTC()
	}
	return nil
}
