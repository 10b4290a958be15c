package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/review-app/config"
	"github.com/yeremiapane/review-app/database"
	"github.com/yeremiapane/review-app/models"
	"github.com/yeremiapane/review-app/utils"
)

// setupTestDB membuat database sqlite baru per test, sudah dimigrasi
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := config.InitDB(config.Config{
		DBDriver: config.DriverSQLite,
		DBDSN:    filepath.Join(t.TempDir(), "controllers.db"),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

func seedReview(t *testing.T, db *gorm.DB, customerName, itemName string, price float64, comment string) (models.Customer, models.Item, models.Review) {
	t.Helper()

	customer := models.Customer{Name: models.Ptr(customerName)}
	item := models.Item{Name: models.Ptr(itemName), Price: models.Ptr(price)}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&item).Error)

	review := models.Review{Comment: comment, CustomerID: customer.ID, ItemID: item.ID}
	require.NoError(t, db.Create(&review).Error)

	return customer, item, review
}

func doRequest(t *testing.T, r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}
