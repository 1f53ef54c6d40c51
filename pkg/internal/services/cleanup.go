package services

import (
	"time"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

const postViewRetention = 90 * 24 * time.Hour

// DoAutoDatabaseCleanup trims read receipts past retention. The per-post
// totals stay as already accumulated, only the raw rows go.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-postViewRetention).Unix()

	tx := database.C.
		Where("created_at < ?", deadline).
		Delete(&models.PostView{})
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up database...")
		return
	}
	if tx.RowsAffected > 0 {
		log.Info().Int64("rows", tx.RowsAffected).Msg("Cleaned up outdated post views.")
	}
}
