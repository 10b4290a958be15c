package modeltest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/review-app/config"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(config.Config{
		DBDriver: config.DriverSQLite,
		DBDSN:    filepath.Join(t.TempDir(), "relaxed.db"),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

func ptr[T any](v T) *T {
	return &v
}

func TestReviewCanBeSavedWithoutCustomerOrItem(t *testing.T) {
	db := setupTestDB(t)

	review := Review{Comment: "Partially built"}
	require.NoError(t, db.Create(&review).Error)
	assert.NotZero(t, review.ID)

	var got Review
	require.NoError(t, db.Preload("Customer").Preload("Item").First(&got, review.ID).Error)
	assert.Equal(t, "Partially built", got.Comment)
	assert.Nil(t, got.CustomerID)
	assert.Nil(t, got.ItemID)
	assert.Nil(t, got.Customer)
	assert.Nil(t, got.Item)
	assert.Equal(t, "<Review 1, Customer None, Item None, 'Partially built'>", got.String())
}

func TestSerializeReviewWithMissingRelations(t *testing.T) {
	db := setupTestDB(t)

	customer := Customer{Name: ptr("Ada")}
	require.NoError(t, db.Create(&customer).Error)

	review := Review{Comment: "No item yet", CustomerID: &customer.ID}
	require.NoError(t, db.Create(&review).Error)

	var got Review
	require.NoError(t, db.Preload("Customer.Reviews").Preload("Item").First(&got, review.ID).Error)

	d := ToDict(got)
	assert.Nil(t, d["item"])
	assert.Nil(t, d["item_id"])
	assert.Equal(t, customer.ID, d["customer_id"])
	assert.Equal(t, map[string]interface{}{"id": customer.ID, "name": "Ada"}, d["customer"])
}

func TestSerializeCustomerAndItemRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	customer := Customer{Name: ptr("Ada")}
	item := Item{Name: ptr("Widget"), Price: ptr(9.99)}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&item).Error)
	require.NoError(t, db.Create(&Review{Comment: "Great", CustomerID: &customer.ID, ItemID: &item.ID}).Error)

	var gotCustomer Customer
	require.NoError(t, db.Preload("Reviews.Item").First(&gotCustomer, customer.ID).Error)
	require.Len(t, gotCustomer.Items(), 1)
	assert.Equal(t, "<Item 1, Widget, 9.99>", gotCustomer.Items()[0].String())

	cd := ToDict(gotCustomer)
	reviews := cd["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	rd := reviews[0].(map[string]interface{})
	assert.NotContains(t, rd, "customer")
	assert.NotContains(t, rd["item"].(map[string]interface{}), "reviews")

	var gotItem Item
	require.NoError(t, db.Preload("Reviews.Customer").First(&gotItem, item.ID).Error)
	id := ToDict(&gotItem)
	reviews = id["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	rd = reviews[0].(map[string]interface{})
	assert.NotContains(t, rd, "item")
	assert.NotContains(t, rd["customer"].(map[string]interface{}), "reviews")
}

func TestCascadeStillAppliesToRelaxedReviews(t *testing.T) {
	db := setupTestDB(t)

	customer := Customer{Name: ptr("Ada")}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&Review{Comment: "a", CustomerID: &customer.ID}).Error)
	require.NoError(t, db.Create(&Review{Comment: "orphan"}).Error)

	require.NoError(t, db.Select("Reviews").Delete(&customer).Error)

	var remaining []Review
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "orphan", remaining[0].Comment)
}
