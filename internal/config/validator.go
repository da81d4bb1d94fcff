package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/lbarroso/conjugar/internal/verbs"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("regularity", isRegularity); err != nil {
		return nil, nil, fmt.Errorf("failed to register regularity validation: %w", err)
	}
	if err := validate.RegisterTranslation("regularity", trans, func(ut ut.Translator) error {
		return ut.Add("regularity", "{0} must be one of all, regular or irregular", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("regularity", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register regularity translation: %w", err)
	}

	return validate, trans, nil
}

func isRegularity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case verbs.RegularityAll, verbs.RegularityRegular, verbs.RegularityIrregular:
		return true
	}
	return false
}
