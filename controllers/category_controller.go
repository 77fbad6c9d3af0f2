package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/vnkhanh/podshare-backend/config"
	"github.com/vnkhanh/podshare-backend/models"
)

func CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	slugValue := slug.Make(name)

	var count int64
	config.DB.Model(&models.Category{}).
		Where("LOWER(TRIM(category_name)) = ? OR slug = ?", strings.ToLower(name), slugValue).
		Count(&count)

	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name or slug already exists"})
		return
	}

	category := models.Category{
		ID:           uuid.New(),
		CategoryName: name,
		Slug:         slugValue,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

func GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0)
	if err := config.DB.Order("category_name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}
