package models

import "time"

// Tournament представляет ежемесячный турнир.
type Tournament struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Year           int       `json:"year" db:"year"`
	Month          int       `json:"month" db:"month"` // 1-12
	SequenceNumber int       `json:"sequence_number" db:"sequence_number"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	// Заполняется сервисом при чтении
	Pairings []Pairing `json:"pairings" db:"-"`
}
