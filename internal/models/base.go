package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is embedded by entities that share an auto-increment id and the created/modified pair.
// LastModTime is not refreshed by GORM on save; callers set it when they update a row.
type BaseModel struct {
	ID          uint      `json:"id"            gorm:"primaryKey;autoIncrement"`
	CreatedTime time.Time `json:"created_time"  gorm:"not null"`
	LastModTime time.Time `json:"last_mod_time" gorm:"not null"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	stampCreated(&b.CreatedTime, &b.LastModTime)
	return nil
}

// Touch sets the last modification time to now.
func (b *BaseModel) Touch() { b.LastModTime = Now() }

// Timestamps is the created/modified pair without an id, used by Link and SideBar.
type Timestamps struct {
	CreatedTime time.Time `json:"created_time"  gorm:"not null"`
	LastModTime time.Time `json:"last_mod_time" gorm:"not null"`
}

func (t *Timestamps) BeforeCreate(tx *gorm.DB) error {
	stampCreated(&t.CreatedTime, &t.LastModTime)
	return nil
}

func (t *Timestamps) Touch() { t.LastModTime = Now() }

// Now is the clock used for default timestamps. Tests may replace it.
var Now = func() time.Time { return time.Now() }

func stampCreated(created, modified *time.Time) {
	if created.IsZero() {
		*created = Now()
	}
	if modified.IsZero() {
		*modified = *created
	}
}
