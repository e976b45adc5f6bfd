package handler

import (
	mid "catalog-service/internal/middleware"
	"catalog-service/internal/model"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/upload"
	"catalog-service/prometheus"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var uploadDir = "static/uploads"

// SetUploadDir configures where product images are written
func SetUploadDir(dir string) {
	uploadDir = dir
}

// Dashboard renders aggregate catalog counts for the admin
func Dashboard(c echo.Context) error {
	log := logger.FromContext(c)

	if username, ok := mid.GetAdminFromContext(c); ok {
		log.Info("Dashboard viewed", zap.String("username", username))
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	db := database.GetDB()

	var totalCategories, totalProducts, totalInquiries int64
	if err := db.Model(&model.Category{}).Count(&totalCategories).Error; err != nil {
		log.Error("Failed to count categories", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load dashboard")
	}
	if err := db.Model(&model.Product{}).Count(&totalProducts).Error; err != nil {
		log.Error("Failed to count products", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load dashboard")
	}
	if err := db.Model(&model.Inquiry{}).Count(&totalInquiries).Error; err != nil {
		log.Error("Failed to count inquiries", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load dashboard")
	}

	return c.Render(http.StatusOK, "admin_dashboard.html", echo.Map{
		"TotalCategories": totalCategories,
		"TotalProducts":   totalProducts,
		"TotalInquiries":  totalInquiries,
	})
}

// ListInquiries shows all inquiries, newest first. Inquiries may reference
// products that were deleted since submission.
func ListInquiries(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var inquiries []model.Inquiry
	if result := database.GetDB().Order("created_at DESC").Find(&inquiries); result.Error != nil {
		log.Error("Failed to list inquiries", zap.Error(result.Error))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load inquiries")
	}

	log.Info("Inquiries retrieved", zap.Int("count", len(inquiries)))
	return c.Render(http.StatusOK, "admin_inquiries.html", echo.Map{
		"Inquiries": inquiries,
	})
}

// AddProductForm renders the product creation form with category choices
func AddProductForm(c echo.Context) error {
	log := logger.FromContext(c)

	var categories []model.Category
	if result := database.GetDB().Find(&categories); result.Error != nil {
		log.Error("Failed to list categories", zap.Error(result.Error))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load categories")
	}

	return c.Render(http.StatusOK, "admin_add_product.html", echo.Map{
		"Categories": categories,
	})
}

// AddProduct creates a product plus its specification, packaging and image
// rows from one multipart submission. All inserts run in a single
// transaction; on any failure no rows are committed. Files already written to
// the upload directory when a later insert fails are left behind.
func AddProduct(c echo.Context) error {
	log := logger.FromContext(c)

	name := c.FormValue("name")
	categoryIDRaw := c.FormValue("category_id")
	description := c.FormValue("description")
	packaging := c.FormValue("packaging")
	moq := c.FormValue("moq")

	if name == "" || categoryIDRaw == "" || description == "" || packaging == "" || moq == "" {
		log.Warn("Incomplete product submission", zap.String("name", name))
		return renderAddProductError(c, http.StatusBadRequest, "All product fields are required")
	}

	categoryID, err := strconv.ParseUint(categoryIDRaw, 10, 32)
	if err != nil || categoryID == 0 {
		log.Warn("Invalid category id in product submission", zap.String("category_id", categoryIDRaw))
		return renderAddProductError(c, http.StatusBadRequest, "Invalid category")
	}

	// Categorization is not advisory: the category must exist
	var count int64
	database.GetDB().Model(&model.Category{}).Where("id = ?", categoryID).Count(&count)
	if count == 0 {
		log.Warn("Unknown category in product submission", zap.Uint64("category_id", categoryID))
		return renderAddProductError(c, http.StatusBadRequest, "Unknown category")
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Error("Failed to parse multipart form", zap.Error(err))
		return renderAddProductError(c, http.StatusBadRequest, "Invalid form submission")
	}

	specs := collectSpecifications(form.Value["spec_name[]"], form.Value["spec_value[]"])
	packs := collectPackaging(
		form.Value["pack_type[]"],
		form.Value["weight[]"],
		form.Value["container20[]"],
		form.Value["container40[]"])
	files := form.File["images"]

	product := model.Product{
		CategoryID:  uint(categoryID),
		Name:        name,
		Description: description,
		Packaging:   packaging,
		MOQ:         moq,
	}

	imageCount := 0
	defer prometheus.TrackDBOperation("insert")(time.Now())
	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		for i := range specs {
			specs[i].ProductID = product.ID
		}
		if len(specs) > 0 {
			if err := tx.Create(&specs).Error; err != nil {
				return err
			}
		}

		for i := range packs {
			packs[i].ProductID = product.ID
		}
		if len(packs) > 0 {
			if err := tx.Create(&packs).Error; err != nil {
				return err
			}
		}

		for _, file := range files {
			// Unfilled file-input slots arrive with an empty filename
			if file.Filename == "" {
				continue
			}
			imageName, err := upload.Save(file, uploadDir)
			if err != nil {
				return err
			}
			if imageName == "" {
				continue
			}
			image := model.ProductImage{ProductID: product.ID, ImageName: imageName}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			imageCount++
		}

		return nil
	})
	if err != nil {
		log.Error("Failed to create product",
			zap.String("name", name),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create product")
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("specifications", len(specs)),
		zap.Int("packaging_rows", len(packs)),
		zap.Int("images", imageCount))

	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeleteProduct removes a product; the database cascades the delete to its
// specification, packaging and image rows. Inquiries keep their product_id.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	productID, err := parseID(c)
	if err != nil {
		return err
	}
	log.Info("Deleting product", zap.Uint("product_id", productID))

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Product{}, productID)
	if result.Error != nil {
		log.Error("Failed to delete product",
			zap.Uint("product_id", productID),
			zap.Error(result.Error))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		log.Warn("Product not found for deletion", zap.Uint("product_id", productID))
	}

	prometheus.RecordProductOperation("delete")
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

func renderAddProductError(c echo.Context, status int, message string) error {
	var categories []model.Category
	database.GetDB().Find(&categories)
	return c.Render(status, "admin_add_product.html", echo.Map{
		"Categories": categories,
		"Error":      message,
	})
}

// collectSpecifications zips the parallel name/value lists positionally.
// Pairs with a blank side are skipped; extra entries in the longer list are
// dropped.
func collectSpecifications(names, values []string) []model.ProductSpecification {
	n := len(names)
	if len(values) < n {
		n = len(values)
	}

	rows := make([]model.ProductSpecification, 0, n)
	for i := 0; i < n; i++ {
		if names[i] == "" || values[i] == "" {
			continue
		}
		rows = append(rows, model.ProductSpecification{
			SpecName:  names[i],
			SpecValue: values[i],
		})
	}
	return rows
}

// collectPackaging zips the four parallel packaging lists positionally,
// truncating to the shortest. A row needs a type and a weight; container
// capacities are stored as submitted, empty strings included.
func collectPackaging(types, weights, container20, container40 []string) []model.ProductPackaging {
	n := len(types)
	for _, l := range [][]string{weights, container20, container40} {
		if len(l) < n {
			n = len(l)
		}
	}

	rows := make([]model.ProductPackaging, 0, n)
	for i := 0; i < n; i++ {
		if types[i] == "" || weights[i] == "" {
			continue
		}
		rows = append(rows, model.ProductPackaging{
			PackagingType: types[i],
			Weight:        weights[i],
			Container20ft: container20[i],
			Container40ft: container40[i],
		})
	}
	return rows
}
