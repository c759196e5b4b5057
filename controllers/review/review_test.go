package reviewControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suraj-naithani/ecart-api/errs"
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

func seedOrder(t *testing.T, db *gorm.DB, userID, productID uint, status models.OrderStatus) {
	t.Helper()
	order := models.Order{
		UserID:    userID,
		SellerID:  99,
		ProductID: productID,
		Total:     100,
		OrderItem: models.OrderItem{Name: "Book", Price: 100, Quantity: 1},
		Status:    status,
	}
	require.NoError(t, db.Create(&order).Error)
	if status != models.OrderStatusProcessing {
		require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
			UpdateColumn("status", status).Error)
	}
}

func TestCreateReviewRequiresDeliveredOrder(t *testing.T) {
	db := setupTestDB(t)

	cases := []struct {
		name   string
		status models.OrderStatus
		seed   bool
	}{
		{"no order at all", "", false},
		{"processing order", models.OrderStatusProcessing, true},
		{"shipped order", models.OrderStatusShipped, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			userID := uint(10)
			productID := uint(20)
			if tc.seed {
				seedOrder(t, db, userID, productID, tc.status)
			}

			_, err := CreateReview(db, userID, productID, 4, "nice")
			var appErr *errs.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusForbidden, appErr.Status)
		})
	}
}

func TestCreateReviewDeliveredOrderSucceeds(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db, 10, 20, models.OrderStatusDelivered)

	review, err := CreateReview(db, 10, 20, 5, "excellent")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateReviewRejectsConflatedIdentifiers(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db, 7, 7, models.OrderStatusDelivered)

	_, err := CreateReview(db, 7, 7, 3, "hm")
	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestGetProductReviewsStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.User{ID: 1, Name: "Asha", Email: "a@x.com", Password: "x", Phone: 1, Address: "x", Role: models.RoleBuyer}).Error)
	for _, rating := range []int{5, 5, 3} {
		require.NoError(t, db.Create(&models.Review{
			UserID: 1, ProductID: 20, Rating: rating, Comment: "c",
		}).Error)
	}

	r := gin.New()
	r.GET("/review/get-review/:productId", GetProductReviews(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/review/get-review/20", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalReviews    int     `json:"totalReviews"`
		TotalRatings    float64 `json:"totalRatings"`
		TotalStarsGroup []struct {
			Rating int   `json:"rating"`
			Count  int64 `json:"count"`
		} `json:"totalStarsGroup"`
		Reviews []struct {
			ReviewerName string `json:"reviewer_name"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 3, body.TotalReviews)
	assert.InDelta(t, 13.0/3.0, body.TotalRatings, 0.0001)
	require.Len(t, body.TotalStarsGroup, 2)
	assert.Equal(t, 5, body.TotalStarsGroup[0].Rating)
	assert.EqualValues(t, 2, body.TotalStarsGroup[0].Count)
	assert.Equal(t, 3, body.TotalStarsGroup[1].Rating)
	assert.EqualValues(t, 1, body.TotalStarsGroup[1].Count)
	require.NotEmpty(t, body.Reviews)
	assert.Equal(t, "Asha", body.Reviews[0].ReviewerName)
}
