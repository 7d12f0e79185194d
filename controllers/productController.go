package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	"github.com/okothpaul/shopkart-api/initializers"
	"github.com/okothpaul/shopkart-api/models"
	"github.com/okothpaul/shopkart-api/services"
)

// GetProducts lists the catalog. ?search= filters by case-insensitive name
// substring, ?category= limits to one category.
func GetProducts(ctx *gin.Context) {
	if search, exists := ctx.GetQuery("search"); exists {
		products, err := services.SearchProducts(initializers.DB, search)
		if err != nil {
			sendServiceError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products, "searchQuery": search})
		return
	}

	var categoryID uint
	if category := ctx.Query("category"); category != "" {
		id, err := strconv.Atoi(category)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse category")
			return
		}
		categoryID = uint(id)
	}

	products, err := services.ListProducts(initializers.DB, categoryID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func GetProduct(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse product id")
		return
	}

	product, err := services.GetProduct(initializers.DB, uint(productID))
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}

func GetCategories(ctx *gin.Context) {
	categories, err := services.ListCategories(initializers.DB)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := services.CreateProduct(initializers.DB, &product); err != nil {
		sendServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := services.CreateCategory(initializers.DB, &category); err != nil {
		sendServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a category. Cascading over its products (and
// their cart and order rows) is opt-in via CATEGORY_CASCADE_DELETE.
func DeleteCategory(ctx *gin.Context) {
	categoryID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse category id")
		return
	}

	cascade := os.Getenv("CATEGORY_CASCADE_DELETE") == "true"
	if err := services.DeleteCategory(initializers.DB, uint(categoryID), cascade); err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImage uploads a product photo to S3 and stores its public
// URL as the product's image reference.
func UploadProductImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No file uploaded")
		return
	}

	productIdStr := ctx.PostForm("productId")
	if productIdStr == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Missing productId")
		return
	}
	productId, err := strconv.Atoi(productIdStr)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid productId")
		return
	}

	product, err := services.GetProduct(initializers.DB, uint(productId))
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	f, err := file.Open()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to open uploaded file")
		return
	}
	defer f.Close()

	// Unique key to prevent overwrites
	uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := initializers.DB.Model(product).Update("image", result.Location).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save image URL")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     result.Location,
	})
}
