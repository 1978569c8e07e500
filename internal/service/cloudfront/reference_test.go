package cloudfront

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCallerReference(t *testing.T) {
	alnum := regexp.MustCompile(`^[0-9A-Za-z]{16}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		ref := NewCallerReference()
		assert.Len(t, ref, CallerReferenceLength)
		assert.Regexp(t, alnum, ref)
		seen[ref] = struct{}{}
	}
	assert.Len(t, seen, 100, "references are unique per invocation")
}
