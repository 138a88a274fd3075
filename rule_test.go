package formvalidation_test

import (
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.False(t, v.Required.Check(""))
	assert.False(t, v.Required.Check("   "))
	assert.True(t, v.Required.Check("a"))
	assert.False(t, v.Required.Check(nil))
	assert.True(t, v.Required.Check(42))
	assert.False(t, v.Required.Check(0))
}

func TestEmail(t *testing.T) {
	assert.True(t, v.Email.Check(""), "empty is vacuously valid")
	assert.True(t, v.Email.Check("a@b.com"))
	assert.False(t, v.Email.Check("a@b"))
	assert.False(t, v.Email.Check("a.com"))
	assert.False(t, v.Email.Check("a b@c.com"))
}

func TestPhone(t *testing.T) {
	assert.True(t, v.Phone.Check(""))
	assert.True(t, v.Phone.Check("0412345678"))
	assert.True(t, v.Phone.Check("+61 412 345 678"))
	assert.True(t, v.Phone.Check("(02) 9999-1234"))
	assert.False(t, v.Phone.Check("call me"))
	assert.False(t, v.Phone.Check("+abc"))
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, v.StrongPassword.Check(""))
	assert.False(t, v.StrongPassword.Check("password"))
	assert.True(t, v.StrongPassword.Check("SecurePass123!"))
	assert.False(t, v.StrongPassword.Check("Sh0rt!a"))
	assert.False(t, v.StrongPassword.Check("alllower123!"))
	assert.False(t, v.StrongPassword.Check("NoSpecial123"))
}

func TestLengthRules(t *testing.T) {
	min := v.MinLength(3)
	assert.True(t, min.Check(""), "empty is vacuously valid")
	assert.False(t, min.Check("ab"))
	assert.True(t, min.Check("abc"))

	max := v.MaxLength(3)
	assert.True(t, max.Check(""))
	assert.True(t, max.Check("abc"))
	assert.False(t, max.Check("abcd"))
}

func TestNameRule(t *testing.T) {
	assert.True(t, v.Name.Check("Mary-Jane O'Brien"))
	assert.True(t, v.Name.Check(""))
	assert.False(t, v.Name.Check("R2D2"))
}

func TestCharClassRules(t *testing.T) {
	assert.True(t, v.Numeric.Check("2000"))
	assert.False(t, v.Numeric.Check("20a0"))
	assert.True(t, v.Numeric.Check(""))

	assert.True(t, v.Alphanumeric.Check("12B"))
	assert.False(t, v.Alphanumeric.Check("12/B"))

	assert.True(t, v.ContainsNumber.Check("12a"))
	assert.False(t, v.ContainsNumber.Check("abc"))
	assert.True(t, v.StartsWithNumber.Check("12a"))
	assert.False(t, v.StartsWithNumber.Check("a12"))
}

func TestOneOf(t *testing.T) {
	r := v.OneOf("state", "NSW", "VIC")
	assert.True(t, r.Check(""))
	assert.True(t, r.Check("NSW"))
	assert.False(t, r.Check("XYZ"))
	assert.Contains(t, r.Message, "'NSW'")
}

func TestWithMessage(t *testing.T) {
	r := v.Required.WithMessage("Email is required")
	require.Equal(t, "Email is required", r.Message)
	require.Equal(t, "This field is required", v.Required.Message, "original unchanged")
	require.Equal(t, v.Required.Name, r.Name)
}
