package intl

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/commerce-admin/pkg/constants"
)

type presetForm struct {
	Name string `validate:"required"`
	Slug string `validate:"max=3"`
}

func TestValidationErrors(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	bundle.MustAddMessages(language.English, &i18n.Message{ID: "Test.Errors.Name", Other: "Give the preset a name"})
	ctx := WithLocalizer(context.Background(), i18n.NewLocalizer(bundle, "en"))
	ctx = WithLocale(ctx, language.English)
	id := func(field string) string { return "Test.Errors." + field }

	errs := ValidationErrors(ctx, constants.Validate.Struct(&presetForm{Slug: "toolong"}), id)
	require.Equal(t, "Give the preset a name", errs["Name"])
	require.Contains(t, errs["Slug"], "Slug")
	require.NotEqual(t, "Test.Errors.Slug", errs["Slug"])

	require.Empty(t, ValidationErrors(ctx, constants.Validate.Struct(&presetForm{Name: "x"}), id))
	require.Empty(t, ValidationErrors(ctx, nil, id))
	require.Equal(t, map[string]string{"": "boom"}, ValidationErrors(ctx, errors.New("boom"), id))
}

func TestValidationErrors_Chinese(t *testing.T) {
	ctx := WithLocale(context.Background(), language.Chinese)
	zh := ValidationErrors(ctx, constants.Validate.Struct(&presetForm{}), func(string) string { return "missing" })
	en := ValidationErrors(context.Background(), constants.Validate.Struct(&presetForm{}), func(string) string { return "missing" })
	require.NotEmpty(t, zh["Name"])
	require.NotEqual(t, en["Name"], zh["Name"])
}
