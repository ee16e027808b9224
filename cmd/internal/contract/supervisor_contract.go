package contract

type SupervisorRequest struct {
	SupervisorName       string `json:"supervisor_name" validate:"required,min=2,max=120"`
	SupervisorEmail      string `json:"supervisor_email" validate:"omitempty,email"`
	SupervisorNomination string `json:"supervisor_nomination"`
}

type SupervisorResponse struct {
	ID                   int64  `json:"id"`
	ContractID           string `json:"contract_id"`
	SupervisorName       string `json:"supervisor_name"`
	SupervisorEmail      string `json:"supervisor_email,omitempty"`
	SupervisorNomination string `json:"supervisor_nomination,omitempty"`
	CreatedAt            string `json:"created_at"`
}
