package petstore

import (
	"time"
)

// Pet rows are written by an external process; this service only reads them.
type Pet struct {
	ID          int       `json:"id" gorm:"column:Id;primaryKey"`
	Name        string    `json:"name" gorm:"column:Name"`
	DateOfBirth time.Time `json:"dateOfBirth" gorm:"column:DateOfBirth;type:timestamptz"`
}

func (Pet) TableName() string {
	return "Pets"
}
