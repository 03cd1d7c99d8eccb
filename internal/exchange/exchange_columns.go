package exchange

// Column headers follow the spreadsheet template the HR office already
// uses, so existing workbooks import without renaming anything.
const (
	ColGeneralNumber    = "الرقم_العام"
	ColNameAr           = "الاسم_بالعربي"
	ColNameEn           = "الاسم_بالانجليزي"
	ColJobTitle         = "المسمى_الوظيفي"
	ColDepartment       = "القسم"
	ColIBAN             = "رقم_الايبان"
	ColPhone            = "رقم_الهاتف"
	ColBirthDate        = "تاريخ_الميلاد"
	ColNationalID       = "رقم_بطاقة_الهوية"
	ColIDIssueDate      = "تاريخ_بداية_الهوية"
	ColIDExpiryDate     = "تاريخ_نهاية_الهوية"
	ColPassportNumber   = "رقم_الجواز"
	ColPassportIssue    = "تاريخ_بداية_الجواز"
	ColPassportExpiry   = "تاريخ_نهاية_الجواز"
	ColPassportType     = "نوع_الجواز"
	ColVisaNumber       = "رقم_التأشيرة"
	ColVisaType         = "نوع_التأشيرة"
	ColVisaIssue        = "تاريخ_بداية_التأشيرة"
	ColVisaExpiry       = "تاريخ_نهاية_التأشيرة"
)

// Columns fixes the sheet layout for both import and export.
var Columns = []string{
	ColGeneralNumber,
	ColNameAr,
	ColNameEn,
	ColJobTitle,
	ColDepartment,
	ColIBAN,
	ColPhone,
	ColBirthDate,
	ColNationalID,
	ColIDIssueDate,
	ColIDExpiryDate,
	ColPassportNumber,
	ColPassportIssue,
	ColPassportExpiry,
	ColPassportType,
	ColVisaNumber,
	ColVisaType,
	ColVisaIssue,
	ColVisaExpiry,
}
