package entity

// ContractAmendment is a formal modification to contract value and/or term.
// NewValue applies to value-type amendments, NewEndDate to term-type ones;
// the combined type carries both. Display ordering is oldest first, which
// gives each row its ordinal ("1º Aditivo", "2º Aditivo", ...).
type ContractAmendment struct {
	ID            int64         `gorm:"primaryKey"`
	ContractID    string        `gorm:"not null;index"` // References: contracts(id)
	AmendmentType AmendmentType `gorm:"not null"`
	NewValue      *float64
	NewEndDate    string
	ProcessNumber string `gorm:"not null"`
	CreatedAt     int64  `gorm:"not null"`
}

// ContractEndorsement is a lighter-weight formal annotation that does not
// rise to the level of a full amendment. Field applicability depends on the
// type: only index readjustments carry an adjustment index, only execution
// deadline extensions carry a new execution date.
type ContractEndorsement struct {
	ID               int64           `gorm:"primaryKey"`
	ContractID       string          `gorm:"not null;index"` // References: contracts(id)
	EndorsementType  EndorsementType `gorm:"not null"`
	NewValue         *float64
	NewExecutionDate string
	AdjustmentIndex  string
	ProcessNumber    string `gorm:"not null"`
	Description      string
	CreatedAt        int64 `gorm:"not null"`
}
