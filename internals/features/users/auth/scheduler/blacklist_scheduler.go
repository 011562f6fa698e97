package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "sanggarku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler hapus token blacklist yang sudah lewat
// masa berlakunya, sekali sehari. Token kadaluarsa ditolak parser JWT
// dengan sendirinya, jadi barisnya tinggal sampah.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklists...")

			res := db.Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
