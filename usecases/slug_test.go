package usecases

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]{6}-[a-z0-9]{6}$`)

func TestNewSlugShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		slug, err := NewSlug()
		require.NoError(t, err)
		assert.Regexp(t, slugShape, slug)
	}
}

func TestNewSlugDoesNotCollide(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		slug, err := NewSlug()
		require.NoError(t, err)
		assert.False(t, seen[slug], "slug %q generated twice", slug)
		seen[slug] = true
	}
}
