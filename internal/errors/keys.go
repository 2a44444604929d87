package errors

// Stable message keys. The core only ever returns these; presentation
// collaborators translate them.
const (
	KeyRequired              = "validation.required"
	KeyInvalidEmail          = "validation.invalidEmail"
	KeyEmailExists           = "validation.emailExists"
	KeyInvalidPhone          = "validation.invalidPhone"
	KeyInvalidDepartment     = "validation.invalidDepartment"
	KeyInvalidPosition       = "validation.invalidPosition"
	KeyInvalidDate           = "validation.invalidDate"
	KeyFutureDate            = "validation.futureDate"
	KeyUnderage              = "validation.underage"
	KeyEmploymentBeforeBirth = "validation.employmentBeforeBirth"
	KeyValidationFailed      = "validation.failed"

	KeyEmployeeNotFound = "errors.employeeNotFound"
	KeySavingEmployee   = "errors.savingEmployee"
	KeyLoadingEmployees = "errors.loadingEmployees"
	KeyInvalidImport    = "errors.invalidImport"
	KeyGeneric          = "errors.genericError"
)
