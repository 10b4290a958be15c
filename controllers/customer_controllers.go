package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/review-app/models"
	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> semua customer beserta review dan item yang direview
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Preload("Reviews.Item").Order("id").Find(&customers).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", models.ToDictList(customers))
}

// CreateCustomer -> name boleh kosong
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{Name: req.Name}
	if err := cc.DB.Create(&customer).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created: %s", customer)

	utils.RespondJSON(c, http.StatusCreated, "Customer created", models.ToDict(customer))
}

// GetCustomerByID -> detail 1 customer
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := cc.DB.Preload("Reviews.Item").First(&customer, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", models.ToDict(customer))
}

// GetCustomerItems -> item yang pernah direview customer ini
func (cc *CustomerController) GetCustomerItems(c *gin.Context) {
	id, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := cc.DB.Preload("Reviews.Item").First(&customer, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer items", models.ToDictList(customer.Items()))
}

// UpdateCustomer -> ganti nama
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	if req.Name != nil {
		customer.Name = req.Name
	}
	if err := cc.DB.Omit(clause.Associations).Save(&customer).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", models.ToDict(customer))
}

// DeleteCustomer -> review milik customer ikut terhapus
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		respondDBError(c, err)
		return
	}

	if err := cc.DB.Select("Reviews").Delete(&customer).Error; err != nil {
		respondDBError(c, err)
		return
	}

	utils.InfoLogger.Printf("Customer deleted: %s", customer)

	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"customer_id": id})
}
