package models

// Vendor is a registered seller. Products are owned exclusively by the
// vendor that embeds them and keep insertion order.
type Vendor struct {
	ID           string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(24)"`
	Name         string    `json:"name" bson:"name" gorm:"type:varchar(255)"`
	Email        string    `json:"email" bson:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password     string    `json:"-" bson:"password" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized to clients
	BusinessName string    `json:"businessName" bson:"businessName" gorm:"type:varchar(255);not null"`
	Products     []Product `json:"products" bson:"products" gorm:"serializer:json;type:text"`
}

// TableName keeps the relational table aligned with the document collection.
func (Vendor) TableName() string {
	return "vendors"
}
