package transform_test

import (
	"testing"

	"github.com/Gobd/formvalidation/transform"
	"github.com/stretchr/testify/assert"
)

func TestTrimSpace(t *testing.T) {
	assert.Equal(t, "a", transform.TrimSpace("  a\t"))
}

func TestLowerUpper(t *testing.T) {
	assert.Equal(t, "abc", transform.Lower("AbC"))
	assert.Equal(t, "NSW", transform.Upper("nsw"))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "Mary Jane", transform.CollapseSpaces("  Mary   Jane "))
	assert.Equal(t, "", transform.CollapseSpaces("   "))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "+61412345678", transform.Digits("+61 412-345 678"))
	assert.Equal(t, "0299991234", transform.Digits("(02) 9999 1234"))
}

func TestChain(t *testing.T) {
	f := transform.Chain(transform.TrimSpace, transform.Lower)
	assert.Equal(t, "user@example.com", f("  USER@Example.COM "))
}
