package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/review-app/models"
	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

func (rc *ReviewController) withRelations() *gorm.DB {
	return rc.DB.Preload("Customer").Preload("Item")
}

// GetAllReviews -> filter opsional ?customer_id= dan ?item_id=
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	var query struct {
		CustomerID uint `form:"customer_id"`
		ItemID     uint `form:"item_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tx := rc.withRelations().Order("id")
	if query.CustomerID != 0 {
		tx = tx.Where("customer_id = ?", query.CustomerID)
	}
	if query.ItemID != 0 {
		tx = tx.Where("item_id = ?", query.ItemID)
	}

	var reviews []models.Review
	if err := tx.Find(&reviews).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reviews", models.ToDictList(reviews))
}

// CreateReview -> customer dan item harus sudah ada
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req struct {
		Comment    string `json:"comment"`
		CustomerID uint   `json:"customer_id" binding:"required"`
		ItemID     uint   `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Foreign keys catch this too, but not every engine enforces them.
	for _, ref := range []struct {
		model interface{}
		id    uint
	}{
		{&models.Customer{}, req.CustomerID},
		{&models.Item{}, req.ItemID},
	} {
		found, err := rc.exists(ref.model, ref.id)
		if err != nil {
			respondDBError(c, err)
			return
		}
		if !found {
			utils.RespondError(c, http.StatusUnprocessableEntity, ErrMissingRelation)
			return
		}
	}

	review := models.Review{
		Comment:    req.Comment,
		CustomerID: req.CustomerID,
		ItemID:     req.ItemID,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		respondDBError(c, err)
		return
	}

	if err := rc.withRelations().First(&review, review.ID).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.InfoLogger.Printf("New review created: %s", review)

	utils.RespondJSON(c, http.StatusCreated, "Review created", models.ToDict(review))
}

// GetReviewByID -> detail 1 review
func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseID(c, "review_id")
	if !ok {
		return
	}

	var review models.Review
	if err := rc.withRelations().First(&review, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review detail", models.ToDict(review))
}

// UpdateReview -> hanya comment yang bisa diubah
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseID(c, "review_id")
	if !ok {
		return
	}

	var req struct {
		Comment *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var review models.Review
	if err := rc.DB.First(&review, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	if req.Comment != nil {
		if err := rc.DB.Model(&review).Update("comment", *req.Comment).Error; err != nil {
			respondDBError(c, err)
			return
		}
	}

	if err := rc.withRelations().First(&review, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review updated", models.ToDict(review))
}

// DeleteReview
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "review_id")
	if !ok {
		return
	}

	result := rc.DB.Delete(&models.Review{}, id)
	if result.Error != nil {
		respondDBError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondDBError(c, gorm.ErrRecordNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review deleted", gin.H{"review_id": id})
}

func (rc *ReviewController) exists(model interface{}, id uint) (bool, error) {
	var count int64
	if err := rc.DB.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
