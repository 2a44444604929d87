package i18n_test

import (
	"testing"

	"employee-roster/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := i18n.New("en")

	testCases := []struct {
		name   string
		lang   string
		key    string
		params map[string]string
		want   string
	}{
		{"english", "en", "validation.required", nil, "This field is required"},
		{"turkish", "tr", "errors.employeeNotFound", nil, "Çalışan bulunamadı"},
		{"placeholder", "en", "validation.underage", map[string]string{"min": "18"}, "Employee must be at least 18 years old"},
		{"unknown placeholder kept", "en", "validation.underage", map[string]string{"max": "1"}, "Employee must be at least {min} years old"},
		{"unknown language falls back", "de", "errors.genericError", nil, "An error occurred. Please try again."},
		{"unknown key returned as is", "tr", "nope.missing", nil, "nope.missing"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tr.Translate(tc.lang, tc.key, tc.params))
		})
	}
}

func TestMatch(t *testing.T) {
	tr := i18n.New("en")

	assert.Equal(t, "tr", tr.Match("tr"))
	assert.Equal(t, "tr", tr.Match("", "tr-TR,tr;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", tr.Match("en-GB"))
	assert.Equal(t, "tr", tr.Match("xx", "TR"))
	assert.Equal(t, "en", tr.Match("de-DE"))
	assert.Equal(t, "en", tr.Match())
}

func TestDefaultLanguage(t *testing.T) {
	assert.Equal(t, "tr", i18n.New("tr").Match("de"))
	assert.Equal(t, "en", i18n.New("fr").Default())
	assert.ElementsMatch(t, []string{"en", "tr"}, i18n.New("en").Languages())
}

func TestTranslateFields(t *testing.T) {
	tr := i18n.New("en")

	got := tr.TranslateFields("tr", map[string]string{
		"email": "validation.emailExists",
		"phone": "validation.invalidPhone",
	}, nil)

	assert.Equal(t, map[string]string{
		"email": "Bu e-posta adresi ile kayıtlı bir çalışan bulunmaktadır",
		"phone": "Geçerli bir telefon numarası giriniz",
	}, got)
	assert.Nil(t, tr.TranslateFields("en", nil, nil))
}
