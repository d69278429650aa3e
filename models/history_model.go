package models

import (
	"time"

	"fms-app/controllers/idgen"
	"fms-app/types"

	"gorm.io/gorm"
)

// TransactionHistory is the audit trail of booking actions.
type TransactionHistory struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	RefID     types.SnowflakeID `json:"ref_id" gorm:"index"`
	RefNo     string            `json:"ref_no" gorm:"size:20;index"`
	Status    string            `json:"status" gorm:"size:20"`
	Type      string            `json:"type" gorm:"size:20"`
	Detail    string            `json:"detail"`
	CreatedAt time.Time         `json:"created_at"`
	CreatedBy int               `json:"created_by"`
}

func (h *TransactionHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == 0 {
		h.ID = idgen.Generate()
	}
	return
}
