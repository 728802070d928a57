package validator

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator validates payload structs and translates failures into
// human readable messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with English translations registered.
func New() (*Validator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Validator{
		validate: validate,
		trans:    trans,
	}, nil
}

// Struct validates s and returns the first translated failure message.
// An empty string means s is valid.
func (v *Validator) Struct(s any) string {
	err := v.validate.Struct(s)
	if err == nil {
		return ""
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0].Translate(v.trans)
	}

	return err.Error()
}
