package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eshopke/eshop-api/controllers"
	"github.com/eshopke/eshop-api/initializers"
	"github.com/eshopke/eshop-api/middlewares"
	"github.com/eshopke/eshop-api/models"
	"github.com/eshopke/eshop-api/payments"
	"github.com/eshopke/eshop-api/routes"
)

const testSecret = "test-secret"

// fakeSessionCreator records the line items it was asked to price.
type fakeSessionCreator struct {
	items []payments.LineItem
	err   error
}

func (f *fakeSessionCreator) CreateCheckoutSession(items []payments.LineItem) (string, error) {
	f.items = items
	if f.err != nil {
		return "", f.err
	}
	return "cs_test_123", nil
}

type testEnv struct {
	server    *gin.Engine
	db        *gorm.DB
	payments  *fakeSessionCreator
	uploadDir string
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	logger := zap.NewNop()
	fake := &fakeSessionCreator{}
	uploadDir := t.TempDir()

	server := gin.New()
	requireAuth := middlewares.RequireAuth(testSecret)
	requireAdmin := middlewares.RequireAdmin()

	api := server.Group("/api/v1")
	routes.CategoryRoutes(api, controllers.NewCategoryController(db, logger), requireAuth, requireAdmin)
	routes.ProductRoutes(api, controllers.NewProductController(db, logger), requireAuth, requireAdmin)
	routes.OrderRoutes(api,
		controllers.NewOrderController(db, logger),
		controllers.NewCheckoutController(db, logger, fake),
		requireAuth, requireAdmin)
	routes.UserRoutes(api, controllers.NewUserController(db, logger, testSecret), requireAuth, requireAdmin)
	routes.UploadRoutes(api, controllers.NewUploadController(logger, uploadDir), requireAuth, requireAdmin)

	return &testEnv{server: server, db: db, payments: fake, uploadDir: uploadDir}
}

func makeToken(t *testing.T, userId uint, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":  userId,
		"isAdmin": isAdmin,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func adminToken(t *testing.T) string {
	return makeToken(t, 1, true)
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.server.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Icon: "icon-" + name, Color: "#aabbcc"}
	require.NoError(t, e.db.Create(&category).Error)
	return category
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64, categoryId uint) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Description: name + " description",
		Brand:       "Acme",
		Price:       price,
		CategoryID:  categoryId,
	}
	require.NoError(t, e.db.Create(&product).Error)
	return product
}

func (e *testEnv) seedFeaturedProduct(t *testing.T, name string, categoryId uint) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       5,
		CategoryID:  categoryId,
		IsFeatured:  true,
	}
	require.NoError(t, e.db.Create(&product).Error)
	return product
}

func (e *testEnv) seedUser(t *testing.T, email, password string, isAdmin bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}
