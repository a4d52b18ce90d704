package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/buildledger/database"
	"github.com/buildledger/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB points the repositories at a fresh in-memory database for the
// duration of one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(database.AllModels()...))

	database.Use(conn)
	t.Cleanup(func() { database.Use(nil) })
	return conn
}

// fixture is a seeded company with enough structure to exercise every
// chat query: two projects, phases with budgets, a small item catalog,
// two vendors and a handful of purchases.
type fixture struct {
	company   models.Company
	towerProj models.Project
	plazaProj models.Project
	greyPhase models.Phase
	finPhase  models.Phase
	category  models.Category
	cement    models.Item
	steel     models.Item
	acme      models.Vendor
	buildCo   models.Vendor
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{}

	f.company = models.Company{Name: "Test Builders"}
	require.NoError(t, db.Create(&f.company).Error)

	f.towerProj = models.Project{
		Name:      "Downtown Tower",
		Budget:    500000,
		Status:    models.ProjectStatusOngoing,
		CompanyID: f.company.ID,
	}
	require.NoError(t, db.Create(&f.towerProj).Error)

	f.plazaProj = models.Project{
		Name:      "Tech Plaza",
		Budget:    300000,
		Status:    models.ProjectStatusStartingSoon,
		CompanyID: f.company.ID,
	}
	require.NoError(t, db.Create(&f.plazaProj).Error)

	f.greyPhase = models.Phase{
		Name:      "Grey",
		Budget:    100000,
		ProjectID: f.towerProj.ID,
		CompanyID: f.company.ID,
	}
	require.NoError(t, db.Create(&f.greyPhase).Error)

	f.finPhase = models.Phase{
		Name:      "Finishing",
		Budget:    80000,
		ProjectID: f.towerProj.ID,
		CompanyID: f.company.ID,
	}
	require.NoError(t, db.Create(&f.finPhase).Error)

	f.category = models.Category{
		Name:      "Materials",
		PhaseID:   f.greyPhase.ID,
		CompanyID: f.company.ID,
	}
	require.NoError(t, db.Create(&f.category).Error)

	f.cement = models.Item{
		Name:       "Portland Cement",
		Unit:       "bag",
		Rate:       12,
		CategoryID: f.category.ID,
		CompanyID:  f.company.ID,
	}
	require.NoError(t, db.Create(&f.cement).Error)

	f.steel = models.Item{
		Name:       "Steel Rebar",
		Unit:       "ton",
		Rate:       800,
		CategoryID: f.category.ID,
		CompanyID:  f.company.ID,
	}
	require.NoError(t, db.Create(&f.steel).Error)

	f.acme = models.Vendor{Name: "Acme Supplies", CompanyID: f.company.ID}
	require.NoError(t, db.Create(&f.acme).Error)

	f.buildCo = models.Vendor{Name: "BuildCo", CompanyID: f.company.ID}
	require.NoError(t, db.Create(&f.buildCo).Error)

	return f
}

// addPurchase records a purchase against the fixture's Grey phase.
func (f *fixture) addPurchase(t *testing.T, db *gorm.DB, item models.Item, vendorID *string, qty, price float64, daysAgo int) models.Purchase {
	t.Helper()

	p := models.Purchase{
		Quantity:     qty,
		PricePerUnit: price,
		PurchaseDate: time.Now().AddDate(0, 0, -daysAgo),
		ItemID:       item.ID,
		CategoryID:   f.category.ID,
		PhaseID:      f.greyPhase.ID,
		ProjectID:    f.towerProj.ID,
		VendorID:     vendorID,
		CompanyID:    f.company.ID,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}
