package dashboardControllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suraj-naithani/ecart-api/errs"
	"github.com/suraj-naithani/ecart-api/middleware"
	"github.com/suraj-naithani/ecart-api/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SellerStats is the seller dashboard payload. All figures cover Delivered
// orders only; the series are zero-filled with the current day/month last.
type SellerStats struct {
	TotalOrder        int64     `json:"totalOrder"`
	TodayOrder        int64     `json:"todayOrder"`
	TotalEarning      float64   `json:"totalEarning"`
	TodayEarning      float64   `json:"todayEarning"`
	WeeklyDayEarnings []float64 `json:"weeklyDayEarnings"`
	MonthlyEarnings   []float64 `json:"monthlyEarnings"`
}

// ProductWithStats augments a product with its order count, conversion rate
// and the owning seller's profile for the admin view.
type ProductWithStats struct {
	models.Product
	OrderCount     int                `json:"order_count"`
	ConversionRate float64            `json:"conversion_rate"`
	Seller         *models.PublicUser `json:"seller"`
}

// OrderWithParties joins an order to both its buyer and seller profiles.
type OrderWithParties struct {
	models.Order
	User   *models.PublicUser `json:"user"`
	Seller *models.PublicUser `json:"seller"`
}

// AdminStats is the global dashboard payload.
type AdminStats struct {
	TotalProduct      int64              `json:"totalProduct"`
	TotalUser         int64              `json:"totalUser"`
	TotalSeller       int64              `json:"totalSeller"`
	TotalEarnings     float64            `json:"totalEarnings"`
	WeeklyDayEarnings []float64          `json:"weeklyDayEarnings"`
	MonthlyEarnings   []float64          `json:"monthlyEarnings"`
	Products          []ProductWithStats `json:"products"`
	AllOrder          []OrderWithParties `json:"allOrder"`
	Categories        []string           `json:"categories"`
}

// -------- Time bucketing --------

// Day boundaries are UTC calendar days throughout.
func todayStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// dailySeries buckets order totals into 7 days; index i is 6-i days before
// today, so the last element is always the current day. Empty buckets are 0.
func dailySeries(orders []models.Order, now time.Time) []float64 {
	series := make([]float64, 7)
	start := todayStart(now)
	for _, order := range orders {
		created := order.CreatedAt.UTC()
		day := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC)
		for i := 0; i < 7; i++ {
			if day.Equal(start.AddDate(0, 0, -(6 - i))) {
				series[i] += order.Total
				break
			}
		}
	}
	return series
}

// monthlySeries buckets order totals into 12 (year, month) pairs; the last
// element is the current month.
func monthlySeries(orders []models.Order, now time.Time) []float64 {
	series := make([]float64, 12)
	start := monthStart(now)
	for _, order := range orders {
		created := order.CreatedAt.UTC()
		month := time.Date(created.Year(), created.Month(), 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 12; i++ {
			if month.Equal(start.AddDate(0, -(11 - i), 0)) {
				series[i] += order.Total
				break
			}
		}
	}
	return series
}

// -------- Core Logic --------

// SellerDashboardStats runs the six independent read-only aggregates
// concurrently and joins them into the response shape. There is no ordering
// dependency between the queries.
func SellerDashboardStats(db *gorm.DB, sellerID uint, now time.Time) (*SellerStats, error) {
	dayStart := todayStart(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	weekStart := dayStart.AddDate(0, 0, -6)
	yearStart := monthStart(now).AddDate(0, -11, 0)

	delivered := func() *gorm.DB {
		return db.Model(&models.Order{}).
			Where("seller_id = ? AND status = ?", sellerID, models.OrderStatusDelivered)
	}

	stats := &SellerStats{}
	var weeklyOrders, monthlyOrders []models.Order

	var g errgroup.Group
	g.Go(func() error {
		return delivered().Count(&stats.TotalOrder).Error
	})
	g.Go(func() error {
		return delivered().
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Count(&stats.TodayOrder).Error
	})
	g.Go(func() error {
		return delivered().
			Select("COALESCE(SUM(total), 0)").Scan(&stats.TotalEarning).Error
	})
	g.Go(func() error {
		return delivered().
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Select("COALESCE(SUM(total), 0)").Scan(&stats.TodayEarning).Error
	})
	g.Go(func() error {
		return delivered().
			Where("created_at >= ?", weekStart).Find(&weeklyOrders).Error
	})
	g.Go(func() error {
		return delivered().
			Where("created_at >= ?", yearStart).Find(&monthlyOrders).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.WeeklyDayEarnings = dailySeries(weeklyOrders, now)
	stats.MonthlyEarnings = monthlySeries(monthlyOrders, now)
	return stats, nil
}

// AdminDashboardStats is the global variant: counts, unscoped revenue series
// and the product/order lists with their cross-entity joins assembled here.
func AdminDashboardStats(db *gorm.DB, now time.Time) (*AdminStats, error) {
	weekStart := todayStart(now).AddDate(0, 0, -6)
	yearStart := monthStart(now).AddDate(0, -11, 0)

	stats := &AdminStats{}
	var weeklyOrders, monthlyOrders, allOrders []models.Order
	var products []models.Product
	var users []models.User

	var g errgroup.Group
	g.Go(func() error {
		return db.Model(&models.Product{}).Count(&stats.TotalProduct).Error
	})
	g.Go(func() error {
		return db.Model(&models.User{}).Where("role = ?", models.RoleBuyer).Count(&stats.TotalUser).Error
	})
	g.Go(func() error {
		return db.Model(&models.User{}).Where("role = ?", models.RoleSeller).Count(&stats.TotalSeller).Error
	})
	g.Go(func() error {
		return db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusDelivered).
			Select("COALESCE(SUM(total), 0)").Scan(&stats.TotalEarnings).Error
	})
	g.Go(func() error {
		return db.Where("status = ? AND created_at >= ?", models.OrderStatusDelivered, weekStart).
			Find(&weeklyOrders).Error
	})
	g.Go(func() error {
		return db.Where("status = ? AND created_at >= ?", models.OrderStatusDelivered, yearStart).
			Find(&monthlyOrders).Error
	})
	g.Go(func() error {
		return db.Find(&products).Error
	})
	g.Go(func() error {
		return db.Find(&allOrders).Error
	})
	g.Go(func() error {
		return db.Model(&models.Product{}).Distinct("category").Pluck("category", &stats.Categories).Error
	})
	g.Go(func() error {
		return db.Find(&users).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.WeeklyDayEarnings = dailySeries(weeklyOrders, now)
	stats.MonthlyEarnings = monthlySeries(monthlyOrders, now)

	// Order counts come from the unfiltered order list, not Delivered-only.
	orderCounts := make(map[uint]int)
	for _, order := range allOrders {
		orderCounts[order.ProductID]++
	}

	usersByID := make(map[uint]models.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}
	lookup := func(id uint, role models.Role) *models.PublicUser {
		if user, ok := usersByID[id]; ok && user.Role == role {
			public := user.Public()
			return &public
		}
		return nil
	}

	stats.Products = make([]ProductWithStats, 0, len(products))
	for _, product := range products {
		orderCount := orderCounts[product.ID]
		rate := 0.0
		if product.HitCount > 0 {
			rate = math.Round(float64(orderCount)/float64(product.HitCount)*100*100) / 100
		}
		stats.Products = append(stats.Products, ProductWithStats{
			Product:        product,
			OrderCount:     orderCount,
			ConversionRate: rate,
			Seller:         lookup(product.SellerID, models.RoleSeller),
		})
	}

	stats.AllOrder = make([]OrderWithParties, 0, len(allOrders))
	for _, order := range allOrders {
		stats.AllOrder = append(stats.AllOrder, OrderWithParties{
			Order:  order,
			User:   lookup(order.UserID, models.RoleBuyer),
			Seller: lookup(order.SellerID, models.RoleSeller),
		})
	}

	return stats, nil
}

// -------- Handlers --------

// GET /dashboard/seller
func SellerDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := SellerDashboardStats(db, middleware.UserID(c), time.Now())
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}

// GET /dashboard/admin
func AdminDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := AdminDashboardStats(db, time.Now())
		if err != nil {
			errs.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}
