package formvalidation_test

import (
	"errors"
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUnconfiguredFieldIsValid(t *testing.T) {
	reg := v.NewRegistry()

	for _, value := range []any{"", "anything", nil, 42} {
		res := reg.Validate("noSuchField", value)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	}
}

func TestValidateBuiltinEmail(t *testing.T) {
	reg := v.NewRegistry()

	res := reg.Validate("email", "")
	require.False(t, res.Valid)
	require.Equal(t, []string{"Email is required"}, res.Errors)

	res = reg.Validate("email", "not-an-email")
	require.False(t, res.Valid)
	require.Equal(t, []string{"Please enter a valid email address"}, res.Errors)

	res = reg.Validate("email", "user@example.com")
	require.True(t, res.Valid)
	require.Empty(t, res.Errors)
}

func TestValidateTransformRunsBeforeRules(t *testing.T) {
	reg := v.NewRegistry()

	// Built-in email config trims and lowercases before validating.
	res := reg.Validate("email", "  USER@Example.COM  ")
	require.True(t, res.Valid)

	res = reg.Validate("email", "   ")
	require.False(t, res.Valid)
	require.Equal(t, []string{"Email is required"}, res.Errors)
}

func TestValidateExplicitConfigWins(t *testing.T) {
	reg := v.NewRegistry()

	cfg := v.FieldConfig{
		Name:  "email",
		Type:  v.TypeText,
		Rules: []v.Rule{v.MaxLength(3)},
	}
	res := reg.Validate("email", "user@example.com", cfg)
	require.False(t, res.Valid)
	require.Equal(t, []string{"Must be no more than 3 characters"}, res.Errors)
}

func TestValidateRequiredFlagPrependsRule(t *testing.T) {
	reg := v.NewRegistry()

	cfg := v.FieldConfig{
		Name:     "nickname",
		Type:     v.TypeText,
		Required: true,
		Rules:    []v.Rule{v.MaxLength(10)},
	}
	res := reg.Validate("nickname", "", cfg)
	require.False(t, res.Valid)
	require.Equal(t, []string{"This field is required"}, res.Errors)
}

func TestValidatePanickingRuleDoesNotAbortSiblings(t *testing.T) {
	reg := v.NewRegistry()

	boom := v.Custom("boom", "boom failed", func(any) bool {
		panic("rule exploded")
	})
	cfg := v.FieldConfig{
		Name: "custom",
		Type: v.TypeText,
		Rules: []v.Rule{
			boom,
			v.MinLength(5),
		},
	}
	res := reg.Validate("custom", "ab", cfg)
	require.False(t, res.Valid)
	require.Equal(t, []string{
		"Validation error: boom failed",
		"Must be at least 5 characters",
	}, res.Errors)
}

func TestValidateErrorOrderMatchesDeclaration(t *testing.T) {
	reg := v.NewRegistry()

	// Street number built-in reports every failing rule, duplicates and
	// all: "abc" neither contains nor starts with a number.
	res := reg.Validate("streetNumber", "abc")
	require.False(t, res.Valid)
	require.Equal(t, []string{
		"Must contain a number",
		"Should start with a number",
	}, res.Errors)
}

func TestValidateIdempotent(t *testing.T) {
	reg := v.NewRegistry()

	first := reg.Validate("password", "weak")
	second := reg.Validate("password", "weak")
	require.Equal(t, first, second)
	require.False(t, first.Valid)
}

func TestRegistryRuleLookup(t *testing.T) {
	reg := v.NewRegistry()

	rule, err := reg.Rule("required")
	require.NoError(t, err)
	require.Equal(t, "required", rule.Name)

	_, err = reg.Rule("nope")
	require.ErrorIs(t, err, v.ErrRuleNotFound)

	require.Panics(t, func() { reg.MustRule("nope") })
}

func TestRegistryRuleOverride(t *testing.T) {
	reg := v.NewRegistry()

	reg.RegisterRule(v.Custom("email", "Custom email message", func(value any) bool {
		return value == "only@this.one"
	}))

	rule, err := reg.Rule("email")
	require.NoError(t, err)
	assert.Equal(t, "Custom email message", rule.Message)
	assert.True(t, rule.Check("only@this.one"))
	assert.False(t, rule.Check("user@example.com"))
}

func TestRegistryConfigOverride(t *testing.T) {
	reg := v.NewRegistry()

	reg.RegisterFieldConfig(v.FieldConfig{
		Name:  "email",
		Type:  v.TypeEmail,
		Rules: []v.Rule{v.Email},
	})

	res := reg.Validate("email", "")
	require.True(t, res.Valid, "override removed the required rule")
}

func TestFreshRegistriesAreIsolated(t *testing.T) {
	a := v.NewRegistry()
	b := v.NewRegistry()

	a.RegisterRule(v.Custom("onlyInA", "nope", func(any) bool { return false }))

	_, err := b.Rule("onlyInA")
	require.True(t, errors.Is(err, v.ErrRuleNotFound))

	_, ok := b.FieldConfigFor("email")
	require.True(t, ok, "built-ins still seeded")
}

func TestFieldConfigForAbsenceIsLegal(t *testing.T) {
	reg := v.NewRegistry()

	_, ok := reg.FieldConfigFor("unconfigured")
	require.False(t, ok)
}

func TestFieldConfigsSorted(t *testing.T) {
	reg := v.NewRegistry()

	cfgs := reg.FieldConfigs()
	require.NotEmpty(t, cfgs)
	for i := 1; i < len(cfgs); i++ {
		require.Less(t, cfgs[i-1].Name, cfgs[i].Name)
	}
}

func TestDefaultRegistryHelpers(t *testing.T) {
	res := v.ValidateField("email", "user@example.com")
	require.True(t, res.Valid)

	rule, err := v.GetRule("strongPassword")
	require.NoError(t, err)
	require.Equal(t, "strongPassword", rule.Name)

	_, ok := v.GetFieldConfig("postcode")
	require.True(t, ok)
}
