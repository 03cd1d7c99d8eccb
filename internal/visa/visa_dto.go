package visa

type CreateVisaRequest struct {
	PassportID string `json:"passport_id" binding:"required,uuid"`
	VisaNumber string `json:"visa_number" binding:"required"`
	VisaTypeID string `json:"visa_type_id" binding:"omitempty,uuid"`
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`
	DocPath    string `json:"doc_path"`
}

type UpdateVisaRequest struct {
	VisaNumber string `json:"visa_number" binding:"required"`
	VisaTypeID string `json:"visa_type_id" binding:"omitempty,uuid"`
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`
	DocPath    string `json:"doc_path"`
}

type VisaResponse struct {
	ID             string `json:"id"`
	PassportID     string `json:"passport_id"`
	PassportNumber string `json:"passport_number,omitempty"`
	EmployeeNameAr string `json:"employee_name,omitempty"`
	VisaNumber     string `json:"visa_number"`
	VisaTypeID     string `json:"visa_type_id,omitempty"`
	VisaTypeName   string `json:"visa_type,omitempty"`
	IssueDate      string `json:"issue_date,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	DocPath        string `json:"doc_path,omitempty"`
}
