package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'usuarios' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Nombres      string    `gorm:"type:varchar(100);not null"`
	Apellidos    string    `gorm:"type:varchar(100);not null"`
	Telefono     string    `gorm:"type:varchar(20);not null"`
	Correo       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'usuario'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Bindings []BindingModel         `gorm:"foreignKey:UserID"`
	Devices  []CaregiverDeviceModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}
