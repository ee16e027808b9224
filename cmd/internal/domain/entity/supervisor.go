package entity

// ContractSupervisor is the "fiscal": the individual designated to oversee
// contract execution.
type ContractSupervisor struct {
	ID                   int64  `gorm:"primaryKey"`
	ContractID           string `gorm:"not null;index"` // References: contracts(id)
	SupervisorName       string `gorm:"not null"`
	SupervisorEmail      string
	SupervisorNomination string
	CreatedAt            int64 `gorm:"not null"`
	UpdatedAt            int64 `gorm:"not null;autoUpdateTime:false"`
}

// ContractDocument is the metadata row for a PDF stored in the object
// storage bucket. FilePath is the bucket key "{contract_id}/{timestamp}.{ext}".
// DocumentNumber is the sequence label among same-type documents: empty for
// the first, "2º" and onwards after that.
type ContractDocument struct {
	ID             int64        `gorm:"primaryKey"`
	ContractID     string       `gorm:"not null;index"` // References: contracts(id)
	DocumentType   DocumentType `gorm:"not null"`
	FileName       string       `gorm:"not null"`
	FilePath       string       `gorm:"not null"`
	FileSize       int64        `gorm:"not null"`
	DocumentNumber string
	UploadedBy     int64
	UploadedAt     int64 `gorm:"not null"`
}
