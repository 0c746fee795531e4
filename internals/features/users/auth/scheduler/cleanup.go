package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "eventpoint_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler membersihkan token blacklist yang sudah
// lewat masa berlaku alaminya, tiap jam.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		log.Println("[CLEANUP] Scheduler blacklist token jalan")
		for {
			res := db.Unscoped().
				Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[CLEANUP] Gagal hapus token kedaluwarsa: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d token kedaluwarsa dihapus", res.RowsAffected)
			}
			time.Sleep(1 * time.Hour)
		}
	}()
}
