package activity

import (
	"time"

	"github.com/lib/pq"
)

// Activity is one timeline record: a note, email, call, legacy todo or
// meeting. Type can be empty on rows written before the column existed;
// those carry IsTask instead and are folded by agenda.EffectiveType.
type Activity struct {
	ID          uint64 `gorm:"primaryKey"`
	Type        string `gorm:"index"`
	IsTask      bool   `gorm:"not null;default:false"`
	Subject     string `gorm:"type:text;not null;default:''"`
	Description string `gorm:"type:text;not null;default:''"`
	Owner       string `gorm:"type:text;not null;default:''"`

	Tags pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	DueDate   *time.Time `gorm:"type:timestamptz;index"`
	CreatedAt time.Time  `gorm:"index;not null;default:now()"`
}

// Task is a standalone to-do item with its own lifecycle. A task may be
// typed "meeting" when it represents a scheduled appointment; the
// calendar colors it as a meeting in that case.
type Task struct {
	ID       uint64 `gorm:"primaryKey"`
	Title    string `gorm:"type:text;not null;default:''"`
	Type     string `gorm:"type:text;not null;default:''"`
	Status   string `gorm:"index;not null;default:'pending'"` // pending/done
	Priority string `gorm:"type:text;not null;default:'normal'"`

	DueDate   *time.Time `gorm:"type:timestamptz;index"`
	CreatedAt time.Time  `gorm:"not null;default:now()"`
}
