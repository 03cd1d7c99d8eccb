package employee

type CreateEmployeeRequest struct {
	GeneralNumber string `json:"general_number" binding:"required"`
	NameAr        string `json:"name_ar" binding:"required"`
	NameEn        string `json:"name_en"`
	BirthDate     string `json:"birth_date"`
	NationalID    string `json:"national_id"`
	IDIssueDate   string `json:"id_issue_date"`
	IDExpiryDate  string `json:"id_expiry_date"`
	DepartmentID  string `json:"department_id" binding:"omitempty,uuid"`
	JobTitleID    string `json:"job_title_id" binding:"omitempty,uuid"`
	Phone         string `json:"phone"`
	IBANNumber    string `json:"iban_number"`
	Role          string `json:"role" binding:"omitempty,oneof=admin regular"`
	PhotoPath     string `json:"photo_path"`
	DocsPath      string `json:"docs_path"`
}

type UpdateEmployeeRequest struct {
	GeneralNumber string `json:"general_number" binding:"required"`
	NameAr        string `json:"name_ar" binding:"required"`
	NameEn        string `json:"name_en"`
	BirthDate     string `json:"birth_date"`
	NationalID    string `json:"national_id"`
	IDIssueDate   string `json:"id_issue_date"`
	IDExpiryDate  string `json:"id_expiry_date"`
	DepartmentID  string `json:"department_id" binding:"omitempty,uuid"`
	JobTitleID    string `json:"job_title_id" binding:"omitempty,uuid"`
	Phone         string `json:"phone"`
	IBANNumber    string `json:"iban_number"`
	Role          string `json:"role" binding:"omitempty,oneof=admin regular"`
	PhotoPath     string `json:"photo_path"`
	DocsPath      string `json:"docs_path"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	GeneralNumber  string `json:"general_number"`
	NameAr         string `json:"name_ar"`
	NameEn         string `json:"name_en,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	NationalID     string `json:"national_id,omitempty"`
	IDIssueDate    string `json:"id_issue_date,omitempty"`
	IDExpiryDate   string `json:"id_expiry_date,omitempty"`
	DepartmentID   string `json:"department_id,omitempty"`
	DepartmentName string `json:"department,omitempty"`
	JobTitleID     string `json:"job_title_id,omitempty"`
	JobTitleName   string `json:"job_title,omitempty"`
	Phone          string `json:"phone,omitempty"`
	IBANNumber     string `json:"iban_number,omitempty"`
	Role           string `json:"role,omitempty"`
	PhotoPath      string `json:"photo_path,omitempty"`
	DocsPath       string `json:"docs_path,omitempty"`
}
