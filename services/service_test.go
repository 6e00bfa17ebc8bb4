package services

import (
	"fmt"
	"testing"
	"time"

	"diveshop-backend/config"
	"diveshop-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared in-memory database so the fan-out's concurrent reads see
	// the same data across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createDiver(t *testing.T, db *gorm.DB, name, email string) models.Diver {
	t.Helper()
	diver := models.Diver{Name: name, Email: email}
	require.NoError(t, db.Create(&diver).Error)
	return diver
}

func createCourse(t *testing.T, db *gorm.DB, name string, price float64) models.Course {
	t.Helper()
	course := models.Course{Name: name, Price: price}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func createAccommodation(t *testing.T, db *gorm.DB, name string, rate float64) models.Accommodation {
	t.Helper()
	acc := models.Accommodation{Name: name, PricePerNight: rate}
	require.NoError(t, db.Create(&acc).Error)
	return acc
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &parsed
}
