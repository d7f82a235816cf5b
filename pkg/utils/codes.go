package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdminCodePrefix keeps the admin code space disjoint from the all-digit
// guest code space.
const AdminCodePrefix = "adm-"

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,9}$`)

// NewEventID returns a globally unique, never reused event identifier.
func NewEventID() string {
	return "event_" + uuid.NewString()
}

// NewGuestCode returns a 6-digit numeric code from a cryptographic source.
func NewGuestCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate guest code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// NewAdminCode returns a longer random code that can never collide with
// a guest code by format alone.
func NewAdminCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return AdminCodePrefix + raw[:10]
}

// NewStoredName allocates the random on-disk key for an upload. Only a
// short, sanitized extension survives from the client-supplied name; the
// base name never reaches the storage key space.
func NewStoredName(originalName string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), SafeExt(originalName))
}

// SafeExt returns the lowercased extension of name when it is plain
// ([a-z0-9], at most 9 chars), otherwise the empty string.
func SafeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// SecureCompare reports whether a and b are equal without leaking the
// position of the first mismatch.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
