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

func ListSupplies(ctx *gin.Context) {
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

	supplies, err := catalog.ListSupplies(db.DB, userID, assignedOnly)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplies"})
		return
	}

	response := make([]types.TagResponse, 0, len(supplies))

	for _, supply := range supplies {
		response = append(response, types.TagResponse{ID: supply.ID, Name: supply.Name})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateSupply(ctx *gin.Context) {
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

	supply := models.Supply{
		Name:   req.Name,
		UserID: userID,
	}

	if err := db.DB.Create(&supply).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supply"})
		return
	}

	ctx.JSON(http.StatusCreated, types.TagResponse{ID: supply.ID, Name: supply.Name})
}

func UpdateSupply(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	supplyID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply ID"})
		return
	}

	var req TagRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	supply, err := catalog.FirstOwned[models.Supply](db.DB, userID, uint(supplyID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Supply not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supply"})
		}
		return
	}

	supply.Name = req.Name

	if err := db.DB.Save(supply).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supply"})
		return
	}

	ctx.JSON(http.StatusOK, types.TagResponse{ID: supply.ID, Name: supply.Name})
}

func DeleteSupply(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	supplyID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply ID"})
		return
	}

	supply, err := catalog.FirstOwned[models.Supply](db.DB, userID, uint(supplyID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Supply not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supply"})
		}
		return
	}

	if err := db.DB.Exec("DELETE FROM painting_supplies WHERE supply_id = ?", supply.ID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supply"})
		return
	}

	if err := db.DB.Delete(supply).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supply"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
