package custody

type DeliverRequest struct {
	PassportIDs []string `json:"passport_ids" binding:"required,min=1,dive,uuid"`
	DeliveredBy string   `json:"delivered_by" binding:"required"`
}

type ReceiveRequest struct {
	PassportIDs []string `json:"passport_ids" binding:"required,min=1,dive,uuid"`
	ReceivedBy  string   `json:"received_by" binding:"required"`
}

// BatchReport tells the operator exactly what happened to each passport in
// the batch, keyed by passport number. AlreadyInState passports were left
// untouched.
type BatchReport struct {
	Updated        []string `json:"updated"`
	AlreadyInState []string `json:"already_in_state"`
	Missing        []string `json:"missing,omitempty"`
}

type HoldingsQuery struct {
	Custodian string `form:"custodian" binding:"omitempty,oneof=organization employee"`
	From      string `form:"from"`
	To        string `form:"to"`
	Search    string `form:"search"`
}

type HoldingResponse struct {
	PassportID     string `json:"passport_id"`
	PassportNumber string `json:"passport_number"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNameAr string `json:"employee_name"`
	GeneralNumber  string `json:"general_number"`
	Custodian      string `json:"custodian"`
	DeliveredBy    string `json:"delivered_by,omitempty"`
	ReceivedBy     string `json:"received_by,omitempty"`
	ReceivedAt     string `json:"received_at,omitempty"`
}

type HandoverResponse struct {
	ID             string `json:"id"`
	PassportID     string `json:"passport_id"`
	PassportNumber string `json:"passport_number"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNameAr string `json:"employee_name"`
	ActionType     string `json:"action_type"`
	ActionAt       string `json:"action_at"`
}
