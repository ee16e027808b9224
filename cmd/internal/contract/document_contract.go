package contract

const MaxDocumentSizeBytes = 30 * 1024 * 1024

// Only PDFs are accepted for contract documents.
var ValidDocumentFileTypes = []string{"pdf"}

type DocumentResponse struct {
	ID             int64  `json:"id"`
	ContractID     string `json:"contract_id"`
	DocumentType   string `json:"document_type"`
	FileName       string `json:"file_name"`
	FilePath       string `json:"file_path"`
	FileSize       int64  `json:"file_size"`
	DocumentNumber string `json:"document_number,omitempty"`
	UploadedAt     string `json:"uploaded_at"`
}
