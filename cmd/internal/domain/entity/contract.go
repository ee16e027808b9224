package entity

// Contract is a procurement agreement between the institution and a
// contracted company. Dates are stored as "2006-01-02" strings, the same
// format the public listing serves them in.
type Contract struct {
	ID                 string         `gorm:"primaryKey"`
	ContractNumber     string         `gorm:"uniqueIndex;not null"`
	GMSNumber          string         `gorm:"column:gms_number"`
	Modality           Modality       `gorm:"not null"`
	Object             string         `gorm:"not null"`
	ContractedCompany  string         `gorm:"not null"`
	ContractValue      float64        `gorm:"not null"`
	StartDate          string         `gorm:"not null"`
	EndDate            string         `gorm:"not null"`
	Status             ContractStatus `gorm:"not null;default:Vigente"`
	ProcessNumber      string         `gorm:"not null"`
	HasExtensionClause bool           `gorm:"not null;default:false"`
	ManagerName        string
	ManagerEmail       string
	ManagerNomination  string
	CreatedBy          int64
	CreatedAt          int64 `gorm:"not null"`
	UpdatedAt          int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations: dependent cleanup is the database's job, never the
	// application's.
	Amendments   []*ContractAmendment   `gorm:"foreignKey:ContractID;references:ID;constraint:OnDelete:CASCADE"`
	Endorsements []*ContractEndorsement `gorm:"foreignKey:ContractID;references:ID;constraint:OnDelete:CASCADE"`
	Supervisors  []*ContractSupervisor  `gorm:"foreignKey:ContractID;references:ID;constraint:OnDelete:CASCADE"`
	Documents    []*ContractDocument    `gorm:"foreignKey:ContractID;references:ID;constraint:OnDelete:CASCADE"`
}
