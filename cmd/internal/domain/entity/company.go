package entity

type RegStatus string

const (
	RegStatusActive    RegStatus = "ACTIVE"
	RegStatusClosed    RegStatus = "CLOSED"
	RegStatusSuspended RegStatus = "SUSPENDED"
	RegStatusUnfit     RegStatus = "UNFIT"
	RegStatusUnknown   RegStatus = "UNKNOWN"
)

// Company caches public-registry data for a contracted company, resolved by
// CNPJ when an administrator fills in the contract form.
type Company struct {
	CNPJ        string `gorm:"primaryKey;column:cnpj"`
	LegalName   string
	TradeName   string
	LegalNature string
	RegStatus   RegStatus
	RegReason   string
	RegDate     string

	// Found controls negative caching: false means the CNPJ was queried,
	// returned a 404, and is cached as invalid so we stop re-asking the API.
	Found    bool  `gorm:"default:true"`
	CachedAt int64 `gorm:"autoUpdateTime:false"`

	Partners []*CompanyPartner `gorm:"foreignKey:CompanyCNPJ;references:CNPJ;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
}

type CompanyPartner struct {
	ID          int    `gorm:"primaryKey"`
	CompanyCNPJ string `gorm:"uniqueIndex:idx_company_partner_cnpj_name;index"`
	Name        string `gorm:"uniqueIndex:idx_company_partner_cnpj_name"`
	Role        string
	RoleCode    int
	AgeRange    string
}
