package models

import "time"

// Cliente do ateliê, sem login. Criado na primeira referência pelo nome.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:255;not null;index" json:"name"`
	Phone *string `gorm:"size:20" json:"phone"`
	Email *string `gorm:"size:255" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
