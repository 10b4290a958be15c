package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/review-app/models"
	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

// GetAllItems -> semua item beserta review dan customer penulisnya
func (ic *ItemController) GetAllItems(c *gin.Context) {
	var items []models.Item
	if err := ic.DB.Preload("Reviews.Customer").Order("id").Find(&items).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of items", models.ToDictList(items))
}

// CreateItem -> price wajib diisi
func (ic *ItemController) CreateItem(c *gin.Context) {
	var req struct {
		Name  *string  `json:"name"`
		Price *float64 `json:"price" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.Item{Name: req.Name, Price: req.Price}
	if err := ic.DB.Create(&item).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.InfoLogger.Printf("New item created: %s", item)

	utils.RespondJSON(c, http.StatusCreated, "Item created", models.ToDict(item))
}

// GetItemByID -> detail 1 item
func (ic *ItemController) GetItemByID(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	var item models.Item
	if err := ic.DB.Preload("Reviews.Customer").First(&item, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item detail", models.ToDict(item))
}

// UpdateItem -> hanya field yang dikirim yang diubah
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	var req struct {
		Name  *string  `json:"name"`
		Price *float64 `json:"price" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	// Field yang tidak dikirim tetap apa adanya, termasuk NULL
	if req.Name != nil {
		item.Name = req.Name
	}
	if req.Price != nil {
		item.Price = req.Price
	}
	if err := ic.DB.Omit(clause.Associations).Save(&item).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item updated", models.ToDict(item))
}

// DeleteItem -> review untuk item ini ikut terhapus
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	if err := ic.DB.Select("Reviews").Delete(&item).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.InfoLogger.Printf("Item deleted: %s", item)

	utils.RespondJSON(c, http.StatusOK, "Item deleted", gin.H{"item_id": id})
}
