package intl

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	zhtranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/iota-uz/commerce-admin/pkg/constants"
)

// validationTranslators hold the validator's stock messages, used when a
// module has no message of its own for a field.
var validationTranslators = func() map[string]ut.Translator {
	uni := ut.New(en.New(), en.New(), zh.New())
	enTrans, _ := uni.GetTranslator("en")
	zhTrans, _ := uni.GetTranslator("zh")
	if err := entranslations.RegisterDefaultTranslations(constants.Validate, enTrans); err != nil {
		panic(err)
	}
	if err := zhtranslations.RegisterDefaultTranslations(constants.Validate, zhTrans); err != nil {
		panic(err)
	}
	return map[string]ut.Translator{"en": enTrans, "zh": zhTrans}
}()

func lookup(l *i18n.Localizer, messageID string) (string, bool) {
	if l == nil {
		return "", false
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	return msg, err == nil && msg != ""
}

// ValidationErrors turns the result of constants.Validate into field
// messages keyed by struct field name. messageID names the bundle message of
// a field; fields without one get the validator's message in the request
// locale. A nil err yields an empty map.
func ValidationErrors(ctx context.Context, err error, messageID func(field string) string) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out[""] = err.Error()
		return out
	}
	l, _ := UseLocalizer(ctx)
	trans := validationTranslators["en"]
	if tag, ok := UseLocale(ctx); ok {
		base, _ := tag.Base()
		if t, ok := validationTranslators[base.String()]; ok {
			trans = t
		}
	}
	for _, fe := range fieldErrs {
		if msg, ok := lookup(l, messageID(fe.Field())); ok {
			out[fe.Field()] = msg
			continue
		}
		out[fe.Field()] = fe.Translate(trans)
	}
	return out
}
