package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atelier-dev/atelier/db"
	"github.com/atelier-dev/atelier/internal/catalog"
	"github.com/atelier-dev/atelier/internal/media"
	"github.com/atelier-dev/atelier/internal/models"
	"github.com/atelier-dev/atelier/internal/types"
	"github.com/atelier-dev/atelier/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

var uploads *media.Storage

// InitUploads prepares the image storage root. Must run before the router
// starts serving upload requests.
func InitUploads(dir string) error {
	storage, err := media.NewStorage(dir)

	if err != nil {
		return err
	}

	uploads = storage
	return nil
}

type CreatePaintingRequest struct {
	Title      string `json:"title" binding:"required"`
	CreateDate string `json:"create_date" binding:"required"`
	Link       string `json:"link"`
	Categories []uint `json:"categories"`
	Supplies   []uint `json:"supplies"`
}

// UpdatePaintingRequest uses pointers so a PATCH can tell "field omitted"
// from "field set to its zero value". For PUT, omitted tag-set fields clear
// the association.
type UpdatePaintingRequest struct {
	Title      *string `json:"title"`
	CreateDate *string `json:"create_date"`
	Link       *string `json:"link"`
	Categories *[]uint `json:"categories"`
	Supplies   *[]uint `json:"supplies"`
}

type PaintingResponse struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	CreateDate string  `json:"create_date"`
	Link       string  `json:"link"`
	Image      *string `json:"image"`
	Categories []uint  `json:"categories"`
	Supplies   []uint  `json:"supplies"`
}

type PaintingDetailResponse struct {
	ID         uint                `json:"id"`
	Title      string              `json:"title"`
	CreateDate string              `json:"create_date"`
	Link       string              `json:"link"`
	Image      *string             `json:"image"`
	Categories []types.TagResponse `json:"categories"`
	Supplies   []types.TagResponse `json:"supplies"`
}

func imageURL(painting *models.Painting) *string {
	if painting.Image == "" {
		return nil
	}

	url := path.Join("/media", filepath.ToSlash(painting.Image))
	return &url
}

func paintingSummary(painting *models.Painting) PaintingResponse {
	categoryIDs := make([]uint, 0, len(painting.Categories))

	for _, category := range painting.Categories {
		categoryIDs = append(categoryIDs, category.ID)
	}

	supplyIDs := make([]uint, 0, len(painting.Supplies))

	for _, supply := range painting.Supplies {
		supplyIDs = append(supplyIDs, supply.ID)
	}

	return PaintingResponse{
		ID:         painting.ID,
		Title:      painting.Title,
		CreateDate: painting.CreateDate.Format(dateLayout),
		Link:       painting.Link,
		Image:      imageURL(painting),
		Categories: categoryIDs,
		Supplies:   supplyIDs,
	}
}

func paintingDetail(painting *models.Painting) PaintingDetailResponse {
	categories := make([]types.TagResponse, 0, len(painting.Categories))

	for _, category := range painting.Categories {
		categories = append(categories, types.TagResponse{ID: category.ID, Name: category.Name})
	}

	supplies := make([]types.TagResponse, 0, len(painting.Supplies))

	for _, supply := range painting.Supplies {
		supplies = append(supplies, types.TagResponse{ID: supply.ID, Name: supply.Name})
	}

	return PaintingDetailResponse{
		ID:         painting.ID,
		Title:      painting.Title,
		CreateDate: painting.CreateDate.Format(dateLayout),
		Link:       painting.Link,
		Image:      imageURL(painting),
		Categories: categories,
		Supplies:   supplies,
	}
}

func ListPaintings(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	categoryIDs, err := catalog.ParseIDList(ctx.Query("categories"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categories filter: " + err.Error()})
		return
	}

	supplyIDs, err := catalog.ParseIDList(ctx.Query("supplies"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplies filter: " + err.Error()})
		return
	}

	paintings, err := catalog.ListPaintings(db.DB, userID, catalog.PaintingFilter{
		CategoryIDs: categoryIDs,
		SupplyIDs:   supplyIDs,
	})

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve paintings"})
		return
	}

	response := make([]PaintingResponse, 0, len(paintings))

	for i := range paintings {
		response = append(response, paintingSummary(&paintings[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetPainting(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paintingID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid painting ID"})
		return
	}

	painting, err := catalog.GetPainting(db.DB, userID, uint(paintingID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve painting"})
		}
		return
	}

	ctx.JSON(http.StatusOK, paintingDetail(painting))
}

func CreatePainting(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreatePaintingRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	createDate, err := time.Parse(dateLayout, req.CreateDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"create_date": "Enter a valid date (YYYY-MM-DD)"}})
		return
	}

	categories, err := catalog.TagsByIDs[models.Category](db.DB, userID, req.Categories)

	if err != nil {
		respondTagLookupError(ctx, "categories", err)
		return
	}

	supplies, err := catalog.TagsByIDs[models.Supply](db.DB, userID, req.Supplies)

	if err != nil {
		respondTagLookupError(ctx, "supplies", err)
		return
	}

	painting := models.Painting{
		Title:      req.Title,
		CreateDate: createDate,
		Link:       req.Link,
		UserID:     userID,
	}

	if err := db.DB.Omit(clause.Associations).Create(&painting).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}

	if err := catalog.ReplaceCategories(db.DB, &painting, categories); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}

	if err := catalog.ReplaceSupplies(db.DB, &painting, supplies); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}

	painting.Categories = categories
	painting.Supplies = supplies

	ctx.JSON(http.StatusCreated, paintingDetail(&painting))
}

func UpdatePainting(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paintingID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid painting ID"})
		return
	}

	var req UpdatePaintingRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	partial := ctx.Request.Method == http.MethodPatch

	if !partial {
		missing := make(map[string]string)

		if req.Title == nil {
			missing["title"] = "This field is required"
		}

		if req.CreateDate == nil {
			missing["create_date"] = "This field is required"
		}

		if len(missing) > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": missing})
			return
		}
	}

	painting, err := catalog.FirstOwned[models.Painting](db.DB, userID, uint(paintingID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve painting"})
		}
		return
	}

	if req.Title != nil {
		painting.Title = *req.Title
	}

	if req.CreateDate != nil {
		createDate, err := time.Parse(dateLayout, *req.CreateDate)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"create_date": "Enter a valid date (YYYY-MM-DD)"}})
			return
		}

		painting.CreateDate = createDate
	}

	if req.Link != nil {
		painting.Link = *req.Link
	} else if !partial {
		painting.Link = ""
	}

	// Tag sets replace wholesale. A full update with an omitted set clears
	// the association; a partial update leaves it untouched.
	replaceCategories := req.Categories != nil || !partial
	replaceSupplies := req.Supplies != nil || !partial

	var categories []models.Category

	if replaceCategories {
		ids := []uint{}

		if req.Categories != nil {
			ids = *req.Categories
		}

		categories, err = catalog.TagsByIDs[models.Category](db.DB, userID, ids)

		if err != nil {
			respondTagLookupError(ctx, "categories", err)
			return
		}
	}

	var supplies []models.Supply

	if replaceSupplies {
		ids := []uint{}

		if req.Supplies != nil {
			ids = *req.Supplies
		}

		supplies, err = catalog.TagsByIDs[models.Supply](db.DB, userID, ids)

		if err != nil {
			respondTagLookupError(ctx, "supplies", err)
			return
		}
	}

	if err := db.DB.Omit(clause.Associations).Save(painting).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}

	if replaceCategories {
		if err := catalog.ReplaceCategories(db.DB, painting, categories); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
			return
		}
	}

	if replaceSupplies {
		if err := catalog.ReplaceSupplies(db.DB, painting, supplies); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
			return
		}
	}

	updated, err := catalog.GetPainting(db.DB, userID, painting.ID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve painting"})
		return
	}

	ctx.JSON(http.StatusOK, paintingDetail(updated))
}

func DeletePainting(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paintingID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid painting ID"})
		return
	}

	if err := catalog.DeletePainting(db.DB, userID, uint(paintingID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func UploadPaintingImage(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paintingID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid painting ID"})
		return
	}

	painting, err := catalog.FirstOwned[models.Painting](db.DB, userID, uint(paintingID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve painting"})
		}
		return
	}

	fileHeader, err := ctx.FormFile("image")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "This field is required"}})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "Upload a valid image"}})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "Upload a valid image"}})
		return
	}

	key, err := uploads.SavePaintingImage(data)

	if err != nil {
		if errors.Is(err, media.ErrInvalidImage) {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "Upload a valid image"}})
		} else {
			log.Printf("Failed to store image for painting %d: %v", painting.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		}
		return
	}

	previous := painting.Image

	if err := db.DB.Model(painting).Update("image", key).Error; err != nil {
		log.Printf("Failed to update painting %d image: %v", painting.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := uploads.Remove(previous); err != nil {
		log.Printf("Failed to remove previous image %q: %v", previous, err)
	}

	painting.Image = key

	ctx.JSON(http.StatusOK, gin.H{"id": painting.ID, "image": *imageURL(painting)})
}

func respondTagLookupError(ctx *gin.Context, field string, err error) {
	if errors.Is(err, catalog.ErrUnknownTag) {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{field: "One or more ids do not exist"}})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve " + field})
}
