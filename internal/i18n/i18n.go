// Package i18n translates search form labels and validation messages.
package i18n

import (
	"fmt"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	esTranslations "github.com/go-playground/validator/v10/translations/es"
	frTranslations "github.com/go-playground/validator/v10/translations/fr"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	LocaleEnglish = "en"
	LocaleSpanish = "es"
	LocaleFrench  = "fr"

	DefaultLocale = LocaleEnglish
)

var (
	supportedLocales = []string{LocaleEnglish, LocaleSpanish, LocaleFrench}
	matcher          = language.NewMatcher([]language.Tag{language.English, language.Spanish, language.French})
)

// Bundle holds one translator per supported locale.
type Bundle struct {
	uni *ut.UniversalTranslator
}

// NewBundle loads the catalog and registers validator message translations on validate.
func NewBundle(validate *validator.Validate) (*Bundle, error) {
	english := en.New()
	uni := ut.New(english, english, es.New(), fr.New())

	for _, locale := range supportedLocales {
		trans, found := uni.GetTranslator(locale)
		if !found {
			return nil, fmt.Errorf("translator for %s not registered", locale)
		}
		for key, text := range catalog[locale] {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("add translation %s/%s: %w", locale, key, err)
			}
		}
		if validate == nil {
			continue
		}
		if err := registerValidatorTranslations(validate, locale, trans); err != nil {
			return nil, fmt.Errorf("register validator translations for %s: %w", locale, err)
		}
	}

	return &Bundle{uni: uni}, nil
}

func registerValidatorTranslations(validate *validator.Validate, locale string, trans ut.Translator) error {
	var err error
	switch locale {
	case LocaleSpanish:
		err = esTranslations.RegisterDefaultTranslations(validate, trans)
	case LocaleFrench:
		err = frTranslations.RegisterDefaultTranslations(validate, trans)
	default:
		err = enTranslations.RegisterDefaultTranslations(validate, trans)
	}
	if err != nil {
		return err
	}

	// oneof guards choice fields, so it reads like any other invalid choice.
	return validate.RegisterTranslation("oneof", trans,
		func(ut.Translator) error { return nil },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T("error.invalid_choice", fmt.Sprint(fe.Value()))
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// Translator returns the translator for locale, falling back to English.
func (b *Bundle) Translator(locale string) ut.Translator {
	trans, _ := b.uni.GetTranslator(locale)
	return trans
}

// T translates key for locale. Unknown keys fall back to English, then to the key itself.
func (b *Bundle) T(locale, key string, params ...string) string {
	if msg, err := b.Translator(locale).T(key, params...); err == nil && msg != "" {
		return msg
	}
	if locale != DefaultLocale {
		return b.T(DefaultLocale, key, params...)
	}
	return key
}

// Supported lists the locales the bundle can translate to.
func Supported() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// Negotiate picks the best supported locale. An explicit choice wins over
// the Accept-Language header.
func Negotiate(explicit, acceptLanguage string) string {
	var candidates []language.Tag
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			candidates = append(candidates, tag)
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			candidates = append(candidates, tags...)
		}
	}
	if len(candidates) == 0 {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(candidates...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[idx]
}

// LanguageName returns the native name of a locale code, e.g. "Deutsch" for "de".
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}
