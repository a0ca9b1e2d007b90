package models

import "time"

// ActivityRecord is one row of the time-allocation dataset. Person is an
// opaque grouping key supplied by the dataset; the core does not enforce
// that it references a registered user.
type ActivityRecord struct {
	ID       uint      `gorm:"primaryKey"`
	Date     time.Time `gorm:"not null;index"`
	Person   string    `gorm:"not null;index"`
	Activity string    `gorm:"not null"`
	Project  string    `gorm:"not null"`
	Hours    float64   `gorm:"not null"`
}

type Project struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}
