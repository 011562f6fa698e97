package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePolicyResolve(t *testing.T) {
	policy := RolePolicy{AdminDomain: "jay.com"}

	tests := []struct {
		name      string
		email     string
		requested string
		want      string
	}{
		{"domain institusi selalu admin", "alice@jay.com", "student", "admin"},
		{"domain institusi tanpa requested", "boss@jay.com", "", "admin"},
		{"case insensitive", "Alice@JAY.COM", "teacher", "admin"},
		{"requested dihormati di luar domain", "budi@gmail.com", "teacher", "teacher"},
		{"default student", "budi@gmail.com", "", "student"},
		{"role asing jatuh ke student", "budi@gmail.com", "superuser", "student"},
		{"substring bukan suffix", "budi@notjay.com.id", "student", "student"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Resolve(tt.email, tt.requested))
		})
	}
}

func TestRolePolicyIsInstitutional(t *testing.T) {
	policy := RolePolicy{AdminDomain: "jay.com"}

	assert.True(t, policy.IsInstitutional("x@jay.com"))
	assert.True(t, policy.IsInstitutional("  x@Jay.Com  "))
	assert.False(t, policy.IsInstitutional("x@gmail.com"))
	assert.False(t, policy.IsInstitutional("x@myjay.com"))

	empty := RolePolicy{}
	assert.False(t, empty.IsInstitutional("x@jay.com"))
}
