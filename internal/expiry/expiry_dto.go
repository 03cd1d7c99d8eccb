package expiry

type ExpiringPassportResponse struct {
	PassportID     string `json:"passport_id"`
	PassportNumber string `json:"passport_number"`
	PassportType   string `json:"passport_type,omitempty"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNameAr string `json:"employee_name"`
	GeneralNumber  string `json:"general_number"`
	ExpiryDate     string `json:"expiry_date"`
	DaysRemaining  int    `json:"days_remaining"`
}

type ExpiringVisaResponse struct {
	VisaID         string `json:"visa_id"`
	VisaNumber     string `json:"visa_number"`
	VisaType       string `json:"visa_type,omitempty"`
	PassportNumber string `json:"passport_number"`
	EmployeeNameAr string `json:"employee_name"`
	ExpiryDate     string `json:"expiry_date"`
	DaysRemaining  int    `json:"days_remaining"`
}
