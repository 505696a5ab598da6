package models

import "time"

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	ID        string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(24)"`
	Name      string    `json:"name" bson:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" bson:"email" gorm:"type:varchar(255);not null"`
	Subject   string    `json:"subject" bson:"subject" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" bson:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (ContactMessage) TableName() string {
	return "contacts"
}
