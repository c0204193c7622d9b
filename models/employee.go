package models

import "time"

type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Department string    `gorm:"type:varchar(100);not null;index" json:"department"`
	Position   string    `gorm:"type:varchar(100);not null" json:"position"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`

	// Tasks are removed together with their employee.
	Tasks []Task `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"tasks"`
}
