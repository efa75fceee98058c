package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database keeps every pooled connection
	// on the same store; the test name keeps tests isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMembership{},
		&models.BingoCard{},
		&models.Prediction{},
		&models.VerificationEvidence{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		Name:         username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)

	return &user
}

// fillQuota assigns categories to the card's slots in position order, one
// run of slots per entry, cycling the allowed periods. Slots beyond the
// given counts stay pending.
func fillQuota(t *testing.T, cards *CardService, cardID, userID uint, counts map[string]int) {
	t.Helper()

	periods := []string{types.PeriodQ2, types.PeriodQ3, types.PeriodQ4}
	position := 0

	for _, category := range types.QuotaCategories {
		for i := 0; i < counts[category]; i++ {
			_, err := cards.UpdatePrediction(cardID, userID, UpdatePredictionInput{
				Position:       position,
				PredictionText: fmt.Sprintf("%s prediction %d", category, position),
				Category:       category,
				TargetPeriod:   periods[position%len(periods)],
			})
			require.NoError(t, err)
			position++
		}
	}
}
