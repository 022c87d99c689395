package usecases

import (
	"crypto/rand"
	"fmt"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	slugGroupLen = 6
	slugGroups   = 2
)

// NewSlug draws cryptographically random bytes and maps them onto the
// lowercase-alphanumeric alphabet as two fixed-length, hyphen-joined
// groups (e.g. "k3x90q-7fah2m"). Collisions are not checked here; the
// unique index on the slug column turns the astronomically unlikely hit
// into a create error instead of a silent overwrite.
func NewSlug() (string, error) {
	buf := make([]byte, slugGroupLen*slugGroups)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate slug: %w", err)
	}

	out := make([]byte, 0, len(buf)+slugGroups-1)
	for i, b := range buf {
		if i > 0 && i%slugGroupLen == 0 {
			out = append(out, '-')
		}
		out = append(out, slugAlphabet[int(b)%len(slugAlphabet)])
	}
	return string(out), nil
}
