package handlers

import (
	"net/http"
	"strconv"

	apperrors "employee-roster/internal/errors"
	"employee-roster/internal/i18n"
	"employee-roster/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response. Error and Errors
// carry stable message keys; Message and Messages their translations.
type ErrorResponse struct {
	Error    string            `json:"error" example:"validation.failed"`
	Message  string            `json:"message" example:"Please correct the highlighted fields"`
	Errors   map[string]string `json:"errors,omitempty"`
	Messages map[string]string `json:"messages,omitempty"`
	Details  string            `json:"details,omitempty"`
}

// LanguageSource reports the language chosen by the user
type LanguageSource interface {
	Language() string
}

// Localizer picks the response language for a request and renders errors
type Localizer struct {
	translator *i18n.Translator
	source     LanguageSource
}

// NewLocalizer creates a localizer falling back to the stored language
func NewLocalizer(translator *i18n.Translator, source LanguageSource) *Localizer {
	return &Localizer{
		translator: translator,
		source:     source,
	}
}

// Language resolves ?lang=, then Accept-Language, then the stored language
func (l *Localizer) Language(c *gin.Context) string {
	return l.translator.Match(c.Query("lang"), c.GetHeader("Accept-Language"), l.source.Language())
}

// Translate renders key in the request language
func (l *Localizer) Translate(c *gin.Context, key string) string {
	return l.translator.Translate(l.Language(c), key, messageParams)
}

// Error writes an ErrorResponse for key and the optional per-field keys
func (l *Localizer) Error(c *gin.Context, status int, key string, fields map[string]string) {
	lang := l.Language(c)
	c.JSON(status, ErrorResponse{
		Error:    key,
		Message:  l.translator.Translate(lang, key, messageParams),
		Errors:   fields,
		Messages: l.translator.TranslateFields(lang, fields, messageParams),
	})
}

// BadRequest writes a generic 400 carrying err as details
func (l *Localizer) BadRequest(c *gin.Context, err error) {
	lang := l.Language(c)
	key := apperrors.KeyOf(err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   key,
		Message: l.translator.Translate(lang, key, messageParams),
		Details: err.Error(),
	})
}

var messageParams = map[string]string{
	"min": strconv.Itoa(service.MinimumAgeYears),
}

// statusFor maps a message key to an HTTP status
func statusFor(key string) int {
	switch key {
	case apperrors.KeyValidationFailed, apperrors.KeyInvalidImport:
		return http.StatusBadRequest
	case apperrors.KeyEmployeeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
