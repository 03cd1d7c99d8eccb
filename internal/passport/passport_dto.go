package passport

type CreatePassportRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	PassportNumber string `json:"passport_number" binding:"required"`
	PassportTypeID string `json:"passport_type_id" binding:"omitempty,uuid"`
	IssueDate      string `json:"issue_date"`
	ExpiryDate     string `json:"expiry_date"`
	IssueAuthority string `json:"issue_authority"`
	DocPath        string `json:"doc_path"`
}

type UpdatePassportRequest struct {
	PassportNumber string `json:"passport_number" binding:"required"`
	PassportTypeID string `json:"passport_type_id" binding:"omitempty,uuid"`
	IssueDate      string `json:"issue_date"`
	ExpiryDate     string `json:"expiry_date"`
	IssueAuthority string `json:"issue_authority"`
	DocPath        string `json:"doc_path"`
}

type PassportResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeNameAr   string `json:"employee_name,omitempty"`
	GeneralNumber    string `json:"general_number,omitempty"`
	PassportNumber   string `json:"passport_number"`
	PassportTypeID   string `json:"passport_type_id,omitempty"`
	PassportTypeName string `json:"passport_type,omitempty"`
	IssueDate        string `json:"issue_date,omitempty"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	IssueAuthority   string `json:"issue_authority,omitempty"`
	DeliveredBy      string `json:"delivered_by,omitempty"`
	ReceivedBy       string `json:"received_by,omitempty"`
	ReceivedAt       string `json:"received_at,omitempty"`
	Custodian        string `json:"custodian"`
	DocPath          string `json:"doc_path,omitempty"`
}
