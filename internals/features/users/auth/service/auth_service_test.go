package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sanggarku_backend/internals/configs"
	userModel "sanggarku_backend/internals/features/users/user/model"
)

func TestHealRole(t *testing.T) {
	policy := configs.RolePolicy{AdminDomain: "jay.com"}

	t.Run("akun institusi yang tersimpan student dipromosikan", func(t *testing.T) {
		role, changed := healRole(policy, "alice@jay.com", userModel.RoleStudent)
		assert.True(t, changed)
		assert.Equal(t, userModel.RoleAdmin, role)
	})

	t.Run("akun institusi yang sudah admin dibiarkan", func(t *testing.T) {
		role, changed := healRole(policy, "alice@jay.com", userModel.RoleAdmin)
		assert.False(t, changed)
		assert.Equal(t, userModel.RoleAdmin, role)
	})

	t.Run("akun biasa tidak pernah dipromosikan", func(t *testing.T) {
		role, changed := healRole(policy, "budi@gmail.com", userModel.RoleStudent)
		assert.False(t, changed)
		assert.Equal(t, userModel.RoleStudent, role)

		role, changed = healRole(policy, "citra@gmail.com", userModel.RoleTeacher)
		assert.False(t, changed)
		assert.Equal(t, userModel.RoleTeacher, role)
	})
}
