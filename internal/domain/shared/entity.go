package shared

import "time"

// Entity is implemented by every aggregate stored in an entity store.
// IDs are sequential positive integers assigned by the store on insert.
type Entity interface {
	GetID() int64
	SetID(id int64)
}

// BaseEntity provides the identity and creation timestamp shared by
// all stored entities.
type BaseEntity struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// SetID sets the entity ID (called by the store on insert)
func (e *BaseEntity) SetID(id int64) {
	e.ID = id
}

// Touch stamps the creation time if it has not been set yet
func (e *BaseEntity) Touch(now time.Time) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now.UTC()
	}
}
