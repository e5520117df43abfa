package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	ServiceKind string          `gorm:"size:20;not null;default:'SEWING'" json:"service_kind"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`

	Status   string `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	Priority string `gorm:"size:10;not null;default:'MEDIUM'" json:"priority"`

	OrderDate     time.Time  `gorm:"type:date;not null" json:"order_date"`
	PromisedDate  *time.Time `gorm:"type:date" json:"promised_date"`
	DeliveredDate *time.Time `gorm:"type:date" json:"delivered_date"`

	ContactPhone *string `gorm:"size:15" json:"contact_phone"`
	Notes        string  `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
