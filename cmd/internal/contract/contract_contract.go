package contract

// StagedAmendment is an amendment the user added in the form before
// submitting. Staged children only ever exist in the request payload; they
// have no identity until the save flushes them.
type StagedAmendment struct {
	AmendmentType string   `json:"amendment_type" validate:"required,amendmenttype"`
	NewValue      *float64 `json:"new_value" validate:"omitempty,gte=0"`
	NewEndDate    string   `json:"new_end_date" validate:"omitempty,datetime=2006-01-02"`
	ProcessNumber string   `json:"process_number" validate:"required"`
}

type StagedEndorsement struct {
	EndorsementType  string   `json:"endorsement_type" validate:"required,endorsementtype"`
	NewValue         *float64 `json:"new_value" validate:"omitempty,gte=0"`
	NewExecutionDate string   `json:"new_execution_date" validate:"omitempty,datetime=2006-01-02"`
	AdjustmentIndex  string   `json:"adjustment_index"`
	ProcessNumber    string   `json:"process_number" validate:"required"`
	Description      string   `json:"description"`
}

type StagedSupervisor struct {
	SupervisorName       string `json:"supervisor_name" validate:"required,min=2,max=120"`
	SupervisorEmail      string `json:"supervisor_email" validate:"omitempty,email"`
	SupervisorNomination string `json:"supervisor_nomination"`
}

// SaveContractRequest drives both create (POST) and update (PUT). The staged
// slices carry only children added during this form session; previously
// persisted amendments and endorsements are never resubmitted.
type SaveContractRequest struct {
	ContractNumber     string  `json:"contract_number" validate:"required,max=60"`
	GMSNumber          string  `json:"gms_number" validate:"omitempty,max=60"`
	Modality           string  `json:"modality" validate:"required,modality"`
	Object             string  `json:"object" validate:"required"`
	ContractedCompany  string  `json:"contracted_company" validate:"required"`
	ContractValue      float64 `json:"contract_value" validate:"gte=0"`
	StartDate          string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status             string  `json:"status" validate:"omitempty,contractstatus"`
	ProcessNumber      string  `json:"process_number" validate:"required"`
	HasExtensionClause bool    `json:"has_extension_clause"`
	ManagerName        string  `json:"manager_name"`
	ManagerEmail       string  `json:"manager_email" validate:"omitempty,email"`
	ManagerNomination  string  `json:"manager_nomination"`

	Amendments   []*StagedAmendment   `json:"amendments" validate:"omitempty,dive"`
	Endorsements []*StagedEndorsement `json:"endorsements" validate:"omitempty,dive"`
	Supervisors  []*StagedSupervisor  `json:"supervisors" validate:"omitempty,dive"`
}

// ChildResult records the outcome of one staged child insert. Child inserts
// are attempted independently; a failed one never blocks the rest.
type ChildResult struct {
	Kind  string `json:"kind"` // "amendment" | "endorsement" | "supervisor"
	Index int    `json:"index"`
	Saved bool   `json:"saved"`
}

type SaveContractResponse struct {
	Contract      *ContractResponse `json:"contract"`
	ChildResults  []*ChildResult    `json:"child_results,omitempty"`
	ChildFailures int               `json:"child_failures"`
}

type ContractResponse struct {
	ID                 string  `json:"id"`
	ContractNumber     string  `json:"contract_number"`
	GMSNumber          string  `json:"gms_number,omitempty"`
	Modality           string  `json:"modality"`
	Object             string  `json:"object"`
	ContractedCompany  string  `json:"contracted_company"`
	ContractValue      float64 `json:"contract_value"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Status             string  `json:"status"`
	ProcessNumber      string  `json:"process_number"`
	HasExtensionClause bool    `json:"has_extension_clause"`
	ManagerName        string  `json:"manager_name,omitempty"`
	ManagerEmail       string  `json:"manager_email,omitempty"`
	ManagerNomination  string  `json:"manager_nomination,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type AmendmentResponse struct {
	ID            int64    `json:"id"`
	Label         string   `json:"label"` // "1º Aditivo", "2º Aditivo", ...
	AmendmentType string   `json:"amendment_type"`
	NewValue      *float64 `json:"new_value,omitempty"`
	NewEndDate    string   `json:"new_end_date,omitempty"`
	ProcessNumber string   `json:"process_number"`
	CreatedAt     string   `json:"created_at"`
}

type EndorsementResponse struct {
	ID               int64    `json:"id"`
	EndorsementType  string   `json:"endorsement_type"`
	NewValue         *float64 `json:"new_value,omitempty"`
	NewExecutionDate string   `json:"new_execution_date,omitempty"`
	AdjustmentIndex  string   `json:"adjustment_index,omitempty"`
	ProcessNumber    string   `json:"process_number"`
	Description      string   `json:"description,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

type ContractDetailResponse struct {
	*ContractResponse
	Amendments   []*AmendmentResponse   `json:"amendments"`
	Endorsements []*EndorsementResponse `json:"endorsements"`
	Supervisors  []*SupervisorResponse  `json:"supervisors"`
	Documents    []*DocumentResponse    `json:"documents"`
}
