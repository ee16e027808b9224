package contract

type CompanyResponse struct {
	CNPJ        string             `json:"cnpj"`
	LegalName   string             `json:"legal_name"`
	TradeName   string             `json:"trade_name"`
	LegalNature string             `json:"legal_nature"`
	RegStatus   string             `json:"registration_status"`
	Partners    []*PartnerResponse `json:"qsa"`
	Cached      bool               `json:"cached"`
}

type PartnerResponse struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	RoleCode int    `json:"role_code"`
	AgeRange string `json:"age_range"`
}

// ExpiringContractsResponse carries the dashboard counters: active
// contracts whose end date falls within each window from today.
type ExpiringContractsResponse struct {
	Within90 int64 `json:"within_90_days"`
	Within60 int64 `json:"within_60_days"`
	Within45 int64 `json:"within_45_days"`
}
