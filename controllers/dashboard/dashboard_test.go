package dashboardControllers

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suraj-naithani/ecart-api/models"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Cart{}, &models.Order{}, &models.Review{},
	))
	return db
}

func seedOrderAt(t *testing.T, db *gorm.DB, sellerID, productID uint, status models.OrderStatus, total float64, createdAt time.Time) {
	t.Helper()
	order := models.Order{
		UserID:    1,
		SellerID:  sellerID,
		ProductID: productID,
		Total:     total,
		OrderItem: models.OrderItem{Name: "Item", Price: total, Quantity: 1},
		Status:    status,
	}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		UpdateColumns(map[string]interface{}{"status": status, "created_at": createdAt}).Error)
}

func TestSellerDashboardEmpty(t *testing.T) {
	db := setupTestDB(t)

	stats, err := SellerDashboardStats(db, 7, time.Now())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalOrder)
	assert.Zero(t, stats.TodayOrder)
	assert.Zero(t, stats.TotalEarning)
	assert.Zero(t, stats.TodayEarning)
	require.Len(t, stats.WeeklyDayEarnings, 7)
	require.Len(t, stats.MonthlyEarnings, 12)
	for _, v := range stats.WeeklyDayEarnings {
		assert.Zero(t, v)
	}
	for _, v := range stats.MonthlyEarnings {
		assert.Zero(t, v)
	}
}

func TestSellerDashboardBucketsAndScoping(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	// delivered today, delivered 3 days ago, delivered 2 months ago
	seedOrderAt(t, db, 7, 1, models.OrderStatusDelivered, 100, now.Add(-2*time.Hour))
	seedOrderAt(t, db, 7, 1, models.OrderStatusDelivered, 40, now.AddDate(0, 0, -3))
	seedOrderAt(t, db, 7, 1, models.OrderStatusDelivered, 500, now.AddDate(0, -2, 0))
	// not delivered: excluded everywhere
	seedOrderAt(t, db, 7, 1, models.OrderStatusShipped, 999, now.Add(-time.Hour))
	// other seller: excluded
	seedOrderAt(t, db, 8, 2, models.OrderStatusDelivered, 777, now.Add(-time.Hour))

	stats, err := SellerDashboardStats(db, 7, now)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalOrder)
	assert.EqualValues(t, 1, stats.TodayOrder)
	assert.InDelta(t, 640, stats.TotalEarning, 0.0001)
	assert.InDelta(t, 100, stats.TodayEarning, 0.0001)

	require.Len(t, stats.WeeklyDayEarnings, 7)
	assert.InDelta(t, 100, stats.WeeklyDayEarnings[6], 0.0001) // last = today
	assert.InDelta(t, 40, stats.WeeklyDayEarnings[3], 0.0001)  // 3 days back
	assert.InDelta(t, 0, stats.WeeklyDayEarnings[0], 0.0001)

	require.Len(t, stats.MonthlyEarnings, 12)
	assert.InDelta(t, 140, stats.MonthlyEarnings[11], 0.0001) // current month
	assert.InDelta(t, 500, stats.MonthlyEarnings[9], 0.0001)  // 2 months back
}

func TestAdminDashboard(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	seller := models.User{Name: "Sam", Email: "s@x.com", Password: "x", Phone: 1, Address: "x", Role: models.RoleSeller}
	buyer := models.User{Name: "Bea", Email: "b@x.com", Password: "x", Phone: 2, Address: "x", Role: models.RoleBuyer}
	require.NoError(t, db.Create(&seller).Error)
	require.NoError(t, db.Create(&buyer).Error)

	product := models.Product{SellerID: seller.ID, Name: "Lamp", Price: 30, Category: "Home Appliances", Stock: 5, HitCount: 8}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.Product{SellerID: seller.ID, Name: "Ball", Price: 10, Category: "Sports", Stock: 5}).Error)

	// one delivered, one processing order for the lamp
	order := models.Order{UserID: buyer.ID, SellerID: seller.ID, ProductID: product.ID, Total: 30,
		OrderItem: models.OrderItem{Name: "Lamp", Price: 30, Quantity: 1}, Status: models.OrderStatusDelivered}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		UpdateColumns(map[string]interface{}{"status": models.OrderStatusDelivered, "created_at": now.Add(-time.Hour)}).Error)
	seedOrderAt(t, db, seller.ID, product.ID, models.OrderStatusProcessing, 30, now.Add(-time.Hour))

	stats, err := AdminDashboardStats(db, now)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalProduct)
	assert.EqualValues(t, 1, stats.TotalUser)
	assert.EqualValues(t, 1, stats.TotalSeller)
	assert.InDelta(t, 30, stats.TotalEarnings, 0.0001) // delivered only

	require.Len(t, stats.WeeklyDayEarnings, 7)
	assert.InDelta(t, 30, stats.WeeklyDayEarnings[6], 0.0001)
	require.Len(t, stats.MonthlyEarnings, 12)
	assert.InDelta(t, 30, stats.MonthlyEarnings[11], 0.0001)

	require.Len(t, stats.Products, 2)
	var lamp ProductWithStats
	for _, p := range stats.Products {
		if p.Name == "Lamp" {
			lamp = p
		}
	}
	// order count spans all statuses, not just Delivered
	assert.Equal(t, 2, lamp.OrderCount)
	assert.InDelta(t, 25.0, lamp.ConversionRate, 0.0001) // 2/8*100
	require.NotNil(t, lamp.Seller)
	assert.Equal(t, "Sam", lamp.Seller.Name)

	require.Len(t, stats.AllOrder, 2)
	require.NotNil(t, stats.AllOrder[0].User)
	assert.Equal(t, "Bea", stats.AllOrder[0].User.Name)
	require.NotNil(t, stats.AllOrder[0].Seller)
	assert.Equal(t, "Sam", stats.AllOrder[0].Seller.Name)

	assert.ElementsMatch(t, []string{"Home Appliances", "Sports"}, stats.Categories)
}

func TestDailySeriesZeroConversionRate(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Product{SellerID: 1, Name: "Unseen", Price: 5, Category: "Other", HitCount: 0}).Error)

	stats, err := AdminDashboardStats(db, time.Now())
	require.NoError(t, err)
	require.Len(t, stats.Products, 1)
	assert.Zero(t, stats.Products[0].ConversionRate)
}
