package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/review-app/config"
	"github.com/yeremiapane/review-app/controllers"
	"github.com/yeremiapane/review-app/middlewares"
	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if cfg.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateInterval).RateLimit())
	}

	customerCtrl := controllers.NewCustomerController(db)
	itemCtrl := controllers.NewItemController(db)
	reviewCtrl := controllers.NewReviewController(db)

	r.GET("/ping", ping(db))

	// Request tulis dibatasi lebih ketat: isi ulang 1 token per 100ms
	api := r.Group("/")
	if cfg.WriteBurst > 0 {
		api.Use(middlewares.NewWriteLimiter(100*time.Millisecond, cfg.WriteBurst).Limit())
	}

	// CUSTOMERS
	api.GET("/customers", customerCtrl.GetAllCustomers)
	api.POST("/customers", customerCtrl.CreateCustomer)
	api.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	api.GET("/customers/:customer_id/items", customerCtrl.GetCustomerItems)
	api.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)
	api.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

	// ITEMS
	api.GET("/items", itemCtrl.GetAllItems)
	api.POST("/items", itemCtrl.CreateItem)
	api.GET("/items/:item_id", itemCtrl.GetItemByID)
	api.PATCH("/items/:item_id", itemCtrl.UpdateItem)
	api.DELETE("/items/:item_id", itemCtrl.DeleteItem)

	// REVIEWS
	api.GET("/reviews", reviewCtrl.GetAllReviews)
	api.POST("/reviews", reviewCtrl.CreateReview)
	api.GET("/reviews/:review_id", reviewCtrl.GetReviewByID)
	api.PATCH("/reviews/:review_id", reviewCtrl.UpdateReview)
	api.DELETE("/reviews/:review_id", reviewCtrl.DeleteReview)

	return r
}

// ping prefers the process-wide handle and falls back to the router's own.
func ping(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn := utils.GetDB()
		if conn == nil {
			conn = db
		}
		if conn == nil {
			utils.RespondError(c, http.StatusServiceUnavailable, errors.New("database not initialized"))
			return
		}

		sqlDB, err := conn.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}
