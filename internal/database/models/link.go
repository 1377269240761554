package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Link is the owned redirect resource. A freshly created link is a disabled
// placeholder (To is null) awaiting a later update. Paid is derived during
// update enrichment and is never taken from client input.
type Link struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Owner     uuid.UUID   `json:"owner" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string      `json:"name" gorm:"size:100"`
	To        *string     `json:"to" gorm:"size:2000"`
	Enabled   bool        `json:"enabled" gorm:"not null;default:false"`
	Paid      bool        `json:"paid" gorm:"not null;default:false"`
	Webhooks  StringSlice `json:"webhooks" gorm:"type:jsonb"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// BeforeCreate sets the UUID if not already set
func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// StringSlice stores a list of strings as a jsonb column.
type StringSlice []string

// Value implements driver.Valuer
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringSlice: %T", value)
	}
	return json.Unmarshal(data, s)
}
