package i18n

// Message tables keyed by the stable message keys returned by the core.
var catalogs = map[string]map[string]string{
	"en": {
		"validation.required":              "This field is required",
		"validation.invalidEmail":          "Please enter a valid email address",
		"validation.invalidPhone":          "Please enter a valid phone number",
		"validation.invalidDate":           "Please enter a valid date",
		"validation.invalidDepartment":     "Please select a valid department",
		"validation.invalidPosition":       "Please select a valid position",
		"validation.emailExists":           "An employee with this email already exists",
		"validation.futureDate":            "Date cannot be in the future",
		"validation.underage":              "Employee must be at least {min} years old",
		"validation.employmentBeforeBirth": "Employment date cannot be before birth date",
		"validation.failed":                "Please correct the highlighted fields",

		"errors.loadingEmployees": "Error loading employees",
		"errors.savingEmployee":   "Error saving employee",
		"errors.deletingEmployee": "Error deleting employee",
		"errors.employeeNotFound": "Employee not found",
		"errors.invalidImport":    "The file is not a valid employee export",
		"errors.genericError":     "An error occurred. Please try again.",

		"success.employeeAdded":   "Employee added successfully",
		"success.employeeUpdated": "Employee updated successfully",
		"success.employeeDeleted": "Employee deleted successfully",
	},
	"tr": {
		"validation.required":              "Bu alan zorunludur",
		"validation.invalidEmail":          "Geçerli bir e-posta adresi giriniz",
		"validation.invalidPhone":          "Geçerli bir telefon numarası giriniz",
		"validation.invalidDate":           "Geçerli bir tarih giriniz",
		"validation.invalidDepartment":     "Geçerli bir departman seçiniz",
		"validation.invalidPosition":       "Geçerli bir pozisyon seçiniz",
		"validation.emailExists":           "Bu e-posta adresi ile kayıtlı bir çalışan bulunmaktadır",
		"validation.futureDate":            "Gelecek tarih seçilemez",
		"validation.underage":              "Çalışan en az {min} yaşında olmalıdır",
		"validation.employmentBeforeBirth": "İşe başlama tarihi doğum tarihinden önce olamaz",
		"validation.failed":                "Lütfen işaretli alanları düzeltiniz",

		"errors.loadingEmployees": "Çalışanlar yüklenirken hata oluştu",
		"errors.savingEmployee":   "Çalışan kaydedilirken hata oluştu",
		"errors.deletingEmployee": "Çalışan silinirken hata oluştu",
		"errors.employeeNotFound": "Çalışan bulunamadı",
		"errors.invalidImport":    "Dosya geçerli bir çalışan dışa aktarımı değil",
		"errors.genericError":     "Bir hata oluştu. Lütfen tekrar deneyin.",

		"success.employeeAdded":   "Çalışan başarıyla eklendi",
		"success.employeeUpdated": "Çalışan başarıyla güncellendi",
		"success.employeeDeleted": "Çalışan başarıyla silindi",
	},
}
