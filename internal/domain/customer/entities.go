package customer

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("customer not found")

type Customer struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	Name           string    `gorm:"column:name;size:255;not null" json:"name"`
	PhoneNumber    string    `gorm:"column:phone_number;size:50;not null;default:'';index" json:"phone_number"`
	Email          string    `gorm:"column:email;size:254;not null;default:''" json:"email"`
	ModuCustomerID *string   `gorm:"column:modu_customer_id;size:100" json:"modu_customer_id"`
	SyncedToModu   bool      `gorm:"column:synced_to_modu;not null;default:false" json:"synced_to_modu"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
