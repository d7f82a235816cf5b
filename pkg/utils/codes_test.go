package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	guestCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	adminCodePattern = regexp.MustCompile(`^adm-[0-9a-f]{10}$`)
)

func TestNewGuestCodeFormat(t *testing.T) {
	code, err := NewGuestCode()
	require.NoError(t, err)
	assert.Regexp(t, guestCodePattern, code)
}

func TestNewAdminCodeFormat(t *testing.T) {
	code := NewAdminCode()
	assert.Regexp(t, adminCodePattern, code)
}

// The two code spaces must stay disjoint by format: an all-digit guest
// code can never equal a prefixed admin code, across many samples.
func TestCodeSpacesDisjoint(t *testing.T) {
	for i := 0; i < 10000; i++ {
		guest, err := NewGuestCode()
		require.NoError(t, err)
		admin := NewAdminCode()

		require.Regexp(t, guestCodePattern, guest)
		require.Regexp(t, adminCodePattern, admin)
		require.NotEqual(t, guest, admin)
	}
}

func TestNewEventIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewEventID()
		require.True(t, strings.HasPrefix(id, "event_"))
		require.False(t, seen[id], "duplicate event id %s", id)
		seen[id] = true
	}
}

func TestSafeExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.jpg", ".jpg"},
		{"photo.JPEG", ".jpeg"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"trailingdot.", ""},
		{"weird.j pg", ""},
		{"../../etc/passwd", ""},
		{"shell.sh;rm", ""},
		{"toolong.abcdefghij", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeExt(tt.name), "input %q", tt.name)
	}
}

func TestNewStoredNameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("stored names never contain path separators", prop.ForAll(
		func(originalName string) bool {
			name := NewStoredName(originalName)
			return !strings.ContainsAny(name, "/\\") && name != "" && name != "." && name != ".."
		},
		gen.AnyString(),
	))

	properties.Property("stored names are unique regardless of input", prop.ForAll(
		func(originalName string) bool {
			return NewStoredName(originalName) != NewStoredName(originalName)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("adm-0123456789", "adm-0123456789"))
	assert.False(t, SecureCompare("adm-0123456789", "adm-0123456780"))
	assert.False(t, SecureCompare("123456", "1234567"))
	assert.False(t, SecureCompare("", "123456"))
	assert.True(t, SecureCompare("", ""))
}
