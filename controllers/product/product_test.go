package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/product", GetAllProducts(db))
	r.GET("/product/search", SearchProducts(db))
	r.GET("/product/:id", GetProduct(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	product := models.Product{
		SellerID: 1,
		Name:     name,
		Price:    20,
		Category: "Electronics",
		Stock:    5,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []models.Product {
	t.Helper()
	var body struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Products
}

func TestGetAllProducts(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "Keyboard")
	seedProduct(t, db, "Mouse")
	r := setupRouter(db)

	w := get(r, "/product")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeProducts(t, w), 2)
}

func TestSearchProductsBySubstring(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "Wireless Keyboard")
	seedProduct(t, db, "Wireless Mouse")
	seedProduct(t, db, "Desk Lamp")
	r := setupRouter(db)

	w := get(r, "/product/search?product=Wireless")
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Contains(t, p.Name, "Wireless")
	}

	// no matches is an empty list, not an error
	w = get(r, "/product/search?product=Teapot")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProducts(t, w))
}

// Every detail fetch bumps hit_count, the conversion-rate denominator.
func TestGetProductIncrementsHitCount(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Keyboard")
	r := setupRouter(db)

	w := get(r, "/product/1")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Product.HitCount)

	// second view persists a second increment
	require.Equal(t, http.StatusOK, get(r, "/product/1").Code)
	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, 2, stored.HitCount)
}

func TestGetProductUnknown(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	assert.Equal(t, http.StatusNotFound, get(r, "/product/99").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/product/abc").Code)
}
