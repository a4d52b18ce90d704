package models_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/buildledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Purchase{}))
	return conn
}

func TestPurchaseBeforeCreate_DerivesTotalCost(t *testing.T) {
	db := openTestDB(t)

	p := models.Purchase{
		Quantity:     10,
		PricePerUnit: 5,
		ItemID:       "item-1",
		CategoryID:   "cat-1",
		PhaseID:      "phase-1",
		ProjectID:    "proj-1",
		CompanyID:    "co-1",
	}
	require.NoError(t, db.Create(&p).Error)

	assert.Equal(t, 50.0, p.TotalCost)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.PurchaseDate.IsZero())
}

func TestPurchaseBeforeCreate_KeepsExplicitValues(t *testing.T) {
	db := openTestDB(t)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	p := models.Purchase{
		ID:           "fixed-id",
		Quantity:     10,
		PricePerUnit: 5,
		TotalCost:    42, // negotiated price overrides the derived one
		PurchaseDate: date,
		ItemID:       "item-1",
		CategoryID:   "cat-1",
		PhaseID:      "phase-1",
		ProjectID:    "proj-1",
		CompanyID:    "co-1",
	}
	require.NoError(t, db.Create(&p).Error)

	assert.Equal(t, "fixed-id", p.ID)
	assert.Equal(t, 42.0, p.TotalCost)
	assert.True(t, p.PurchaseDate.Equal(date))
}

func TestRoleCanManage(t *testing.T) {
	assert.True(t, models.RoleOwner.CanManage())
	assert.True(t, models.RoleAdmin.CanManage())
	assert.False(t, models.RoleMember.CanManage())
	assert.False(t, models.Role("viewer").CanManage())
}

func TestValidProjectStatus(t *testing.T) {
	for _, s := range []models.ProjectStatus{
		models.ProjectStatusStartingSoon,
		models.ProjectStatusOngoing,
		models.ProjectStatusPaused,
		models.ProjectStatusCompleted,
	} {
		assert.True(t, models.ValidProjectStatus(s))
	}
	assert.False(t, models.ValidProjectStatus("cancelled"))
}
