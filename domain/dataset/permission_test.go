package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermission_Encode(t *testing.T) {
	tests := []struct {
		name       string
		permission Permission
		expected   string
	}{
		{
			name:       "no access",
			permission: Permission{NoAccess: true},
			expected:   "--",
		},
		{
			name:       "read only",
			permission: Permission{CanRead: true},
			expected:   "r-",
		},
		{
			name:       "read and write",
			permission: Permission{CanRead: true, CanWrite: true},
			expected:   "rw",
		},
		{
			name:       "no flags set",
			permission: Permission{},
			expected:   "--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.permission.Encode())
		})
	}
}

func TestDecodePermission(t *testing.T) {
	tests := []struct {
		name     string
		access   string
		offset   int
		expected Permission
	}{
		{
			name:     "metadata read write",
			access:   "rwr-----",
			offset:   MetadataPermissionOffset,
			expected: Permission{CanRead: true, CanWrite: true},
		},
		{
			name:     "data read only",
			access:   "rwr-----",
			offset:   DataPermissionOffset,
			expected: Permission{CanRead: true},
		},
		{
			name:     "no access sentinel at metadata offset",
			access:   NoAccessNotation,
			offset:   MetadataPermissionOffset,
			expected: Permission{NoAccess: true},
		},
		{
			name:     "no access sentinel at data offset",
			access:   NoAccessNotation,
			offset:   DataPermissionOffset,
			expected: Permission{NoAccess: true},
		},
		{
			name:     "write only",
			access:   "-w------",
			offset:   MetadataPermissionOffset,
			expected: Permission{CanWrite: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodePermission(tt.access, tt.offset))
		})
	}
}

func TestPermission_RoundTrip(t *testing.T) {
	// All valid states survive encode-then-decode.
	valid := []Permission{
		{NoAccess: true},
		{CanRead: true},
		{CanRead: true, CanWrite: true},
	}
	for _, p := range valid {
		assert.Equal(t, p, DecodePermission(p.Encode(), 0))
	}

	// All well-formed 2-char codec inputs survive decode-then-encode.
	for _, s := range []string{"--", "r-", "rw"} {
		assert.Equal(t, s, DecodePermission(s, 0).Encode())
	}
}

func TestFullAccessString(t *testing.T) {
	metadata := Permission{CanRead: true, CanWrite: true}
	data := Permission{CanRead: true}

	full := FullAccessString(metadata, data)

	assert.Len(t, full, 8)
	assert.Equal(t, "rwr-----", full)
	assert.Equal(t, metadata, DecodePermission(full, MetadataPermissionOffset))
	assert.Equal(t, data, DecodePermission(full, DataPermissionOffset))
}
