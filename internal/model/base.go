package model

import "time"

// A Model is the interface implemented by all database entities.
type Model interface {
	GetID() string
	SetID(id string)
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}

// Base holds the fields shared by all database entities.
type Base struct {
	ID        string    `json:"id"         storm:"id"`
	CreatedAt time.Time `json:"created_at" storm:"index"`
	UpdatedAt time.Time `json:"updated_at" storm:"index"`
}

// GetID returns the entity's identifier.
func (b *Base) GetID() string {
	return b.ID
}

// SetID defines the entity's identifier.
func (b *Base) SetID(id string) {
	b.ID = id
}

// SetCreatedAt defines the entity's creation time.
func (b *Base) SetCreatedAt(t time.Time) {
	b.CreatedAt = t
}

// SetUpdatedAt defines the entity's last update time.
func (b *Base) SetUpdatedAt(t time.Time) {
	b.UpdatedAt = t
}
