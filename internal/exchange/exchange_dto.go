package exchange

// ImportReport summarizes one workbook import. Errors carry one message per
// bad row, prefixed with the sheet row number, so the operator can fix the
// workbook and retry. NotCreated lists the rows whose employee was not
// inserted, either because the general number is already registered or the
// department or job title cell did not resolve.
type ImportReport struct {
	EmployeesCreated int             `json:"employees_created"`
	PassportsCreated int             `json:"passports_created"`
	VisasCreated     int             `json:"visas_created"`
	Skipped          int             `json:"skipped"`
	NotCreated       []NotCreatedRow `json:"not_created"`
	Errors           []string        `json:"errors"`
}

type NotCreatedRow struct {
	GeneralNumber string `json:"general_number"`
	NameAr        string `json:"name_ar"`
}
