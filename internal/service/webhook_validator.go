package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"bizdash-core/internal/core/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// MaxStringLength caps every sanitized string except the primary data.
const MaxStringLength = 1000

// PayloadValidator checks and cleans webhook payloads before dispatch.
type PayloadValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewPayloadValidator builds a validator with English messages and the
// webhook_kind tag registered.
func NewPayloadValidator() (*PayloadValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("registering default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("webhook_kind", func(fl validator.FieldLevel) bool {
		return domain.WebhookKind(fl.Field().String()).Valid()
	}); err != nil {
		return nil, fmt.Errorf("registering webhook_kind validation: %w", err)
	}
	if err := validate.RegisterTranslation("webhook_kind", trans, func(ut ut.Translator) error {
		return ut.Add("webhook_kind", "{0} must be one of the supported webhook types", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("webhook_kind", fe.Field())
		return t
	}); err != nil {
		return nil, fmt.Errorf("registering webhook_kind translation: %w", err)
	}

	return &PayloadValidator{validate: validate, trans: trans}, nil
}

// Validate returns whether the payload is dispatchable and, if not, every
// problem found.
func (v *PayloadValidator) Validate(p domain.WebhookPayload) (bool, []string) {
	var errs []string

	errs = append(errs, v.structErrors(p)...)
	if p.Timestamp.IsZero() {
		errs = append(errs, "timestamp is a required field")
	}
	if p.Content.PrimaryData != "" && strings.TrimSpace(p.Content.PrimaryData) == "" {
		errs = append(errs, "primary_data must not be blank")
	}

	if p.WebhookType.Valid() {
		switch fields := p.Content.TypeSpecific; {
		case fields == nil:
			errs = append(errs, "type_specific_fields is a required field")
		case fields.Kind() != p.WebhookType:
			errs = append(errs, fmt.Sprintf("type_specific_fields are for %s, not %s", fields.Kind(), p.WebhookType))
		default:
			errs = append(errs, v.structErrors(fields)...)
		}
	}

	return len(errs) == 0, errs
}

func (v *PayloadValidator) structErrors(s any) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, e.Translate(v.trans))
	}
	return out
}

// Sanitize returns a cleaned copy of p. Strings are trimmed, stripped of
// control characters and capped at MaxStringLength; nil metadata entries are
// dropped. Content is otherwise passed through as the caller wrote it.
func (v *PayloadValidator) Sanitize(p domain.WebhookPayload) domain.WebhookPayload {
	out := p
	out.UserInfo.Name = sanitizeString(p.UserInfo.Name)
	out.UserInfo.SessionID = sanitizeString(p.UserInfo.SessionID)
	out.ProcessingOptions.Quality = sanitizeString(p.ProcessingOptions.Quality)
	out.Content.PrimaryData = strings.TrimSpace(p.Content.PrimaryData)
	out.Content.Metadata = sanitizeMap(p.Content.Metadata)
	if p.Content.TypeSpecific != nil {
		out.Content.TypeSpecific = sanitizeFieldsValue(p.Content.TypeSpecific)
	}
	return out
}

func sanitizeString(s string) string {
	return truncateRunes(stripControl(strings.TrimSpace(s)), MaxStringLength)
}

// stripControl drops control characters other than newline and tab.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, s)
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

func sanitizeMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		if val == nil {
			continue
		}
		out[strings.TrimSpace(k)] = sanitizeAny(val)
	}
	return out
}

func sanitizeAny(val any) any {
	switch t := val.(type) {
	case string:
		return sanitizeString(t)
	case map[string]any:
		return sanitizeMap(t)
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if item != nil {
				out = append(out, sanitizeAny(item))
			}
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, s := range t {
			out[i] = sanitizeString(s)
		}
		return out
	}
	return val
}

// sanitizeFieldsValue cleans the string and []string fields of a variant.
// Variants are value types, so the result is a modified copy.
func sanitizeFieldsValue(f domain.TypeSpecificFields) domain.TypeSpecificFields {
	src := reflect.ValueOf(f)
	if src.Kind() != reflect.Struct {
		return f
	}
	cp := reflect.New(src.Type()).Elem()
	cp.Set(src)
	for i := 0; i < cp.NumField(); i++ {
		field := cp.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))
		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String || field.IsNil() {
				continue
			}
			cleaned := reflect.MakeSlice(field.Type(), field.Len(), field.Len())
			for j := 0; j < field.Len(); j++ {
				cleaned.Index(j).SetString(sanitizeString(field.Index(j).String()))
			}
			field.Set(cleaned)
		}
	}
	return cp.Interface().(domain.TypeSpecificFields)
}
