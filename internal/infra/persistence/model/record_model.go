package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MaintenanceModel mirrors the 'maintenance' table.
type MaintenanceModel struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;index"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Note      string     `gorm:"type:text;not null"`
	Photo     *string    `gorm:"type:varchar(255)"`
	Status    string     `gorm:"type:varchar(32);not null;default:Pending"`
	CreatedAt time.Time  `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceModel) TableName() string {
	return "maintenance"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"not null;index"`
	User        *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate     datatypes.Date  `gorm:"not null"`
	Status      string          `gorm:"type:varchar(16);not null;default:Unpaid"`
	PaidAt      *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// DeliveryModel mirrors the 'deliveries' table.
type DeliveryModel struct {
	ID         uint                `gorm:"primaryKey"`
	UserID     uint                `gorm:"not null;index"`
	User       *UserModel          `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Courier    string              `gorm:"type:varchar(64);not null"`
	Tracking   string              `gorm:"type:varchar(128);not null"`
	IsCOD      bool                `gorm:"column:is_cod;not null;default:false"`
	CODAmount  decimal.NullDecimal `gorm:"column:cod_amount;type:decimal(12,2)"`
	CODPaid    bool                `gorm:"column:cod_paid;not null;default:false"`
	Status     string              `gorm:"type:varchar(16);not null;default:Logged"`
	ReceivedAt *time.Time
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&BuildingModel{},
		&UserModel{},
		&MaintenanceModel{},
		&PaymentModel{},
		&DeliveryModel{},
	}
}
