package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/atelier-dev/atelier/db"
	"github.com/atelier-dev/atelier/internal/catalog"
	"github.com/atelier-dev/atelier/internal/models"
	"github.com/atelier-dev/atelier/internal/types"
	"github.com/atelier-dev/atelier/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TagRequest struct {
	Name string `json:"name" binding:"required"`
}

func ListCategories(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	assignedOnly := false

	if raw := ctx.Query("assigned_only"); raw != "" {
		assignedOnly, err = strconv.ParseBool(raw)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigned_only value"})
			return
		}
	}

	categories, err := catalog.ListCategories(db.DB, userID, assignedOnly)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	response := make([]types.TagResponse, 0, len(categories))

	for _, category := range categories {
		response = append(response, types.TagResponse{ID: category.ID, Name: category.Name})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateCategory(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req TagRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	category := models.Category{
		Name:   req.Name,
		UserID: userID,
	}

	if err := db.DB.Create(&category).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	ctx.JSON(http.StatusCreated, types.TagResponse{ID: category.ID, Name: category.Name})
}

func UpdateCategory(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	categoryID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req TagRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	category, err := catalog.FirstOwned[models.Category](db.DB, userID, uint(categoryID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	category.Name = req.Name

	if err := db.DB.Save(category).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	ctx.JSON(http.StatusOK, types.TagResponse{ID: category.ID, Name: category.Name})
}

func DeleteCategory(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	categoryID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	category, err := catalog.FirstOwned[models.Category](db.DB, userID, uint(categoryID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	if err := db.DB.Exec("DELETE FROM painting_categories WHERE category_id = ?", category.ID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	if err := db.DB.Delete(category).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
