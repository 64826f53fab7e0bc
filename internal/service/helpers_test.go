package service

import (
	"testing"

	"kostify-backend/internal/database"
	"kostify-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

// seedProperty creates a property with one available room and returns both.
func seedProperty(t *testing.T, db *gorm.DB, ownerID string) (*models.Property, *models.Room) {
	t.Helper()

	property := &models.Property{
		OwnerID:    ownerID,
		Name:       "Kost A",
		Address:    "Jl. Merdeka 1",
		TotalRooms: 10,
	}
	require.NoError(t, db.Create(property).Error)

	room := &models.Room{
		PropertyID: property.ID,
		RoomNumber: "101",
		Price:      1500000,
		Status:     models.RoomAvailable,
	}
	require.NoError(t, db.Create(room).Error)

	return property, room
}
