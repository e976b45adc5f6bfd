package handler

import (
	"catalog-service/internal/model"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Home renders the landing page with all categories
func Home(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var categories []model.Category
	if result := database.GetDB().Find(&categories); result.Error != nil {
		log.Error("Failed to list categories", zap.Error(result.Error))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load categories")
	}

	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Categories": categories,
	})
}

// About renders the static about page
func About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", nil)
}

// ContactForm renders the contact page
func ContactForm(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", echo.Map{})
}

// SubmitContact logs a contact-form submission and redirects back. Contact
// messages are not persisted.
func SubmitContact(c echo.Context) error {
	log := logger.FromContext(c)

	name := c.FormValue("name")
	email := c.FormValue("email")
	subject := c.FormValue("subject")
	message := c.FormValue("message")

	if name == "" || email == "" || subject == "" || message == "" {
		log.Warn("Incomplete contact submission")
		return c.Render(http.StatusBadRequest, "contact.html", echo.Map{
			"Error": "All fields are required",
		})
	}

	log.Info("Contact form submitted",
		zap.String("name", name),
		zap.String("email", email),
		zap.String("subject", subject))

	return c.Redirect(http.StatusFound, "/contact")
}

// CategoryProducts lists the products of one category
func CategoryProducts(c echo.Context) error {
	log := logger.FromContext(c)

	categoryID, err := parseID(c)
	if err != nil {
		return err
	}
	log.Info("Listing products by category", zap.Uint("category_id", categoryID))

	defer prometheus.TrackDBOperation("query")(time.Now())
	var products []model.Product
	if result := database.GetDB().Where("category_id = ?", categoryID).Find(&products); result.Error != nil {
		log.Error("Failed to list products",
			zap.Uint("category_id", categoryID),
			zap.Error(result.Error))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load products")
	}

	log.Info("Products retrieved", zap.Int("count", len(products)))
	return c.Render(http.StatusOK, "products.html", echo.Map{
		"CategoryID": categoryID,
		"Products":   products,
	})
}

// ProductDetail shows one product with its joined specifications, packaging
// rows and images. A missing product renders an empty page rather than a 404;
// the templates handle the empty sections.
func ProductDetail(c echo.Context) error {
	log := logger.FromContext(c)

	productID, err := parseID(c)
	if err != nil {
		return err
	}
	log.Info("Getting product detail", zap.Uint("product_id", productID))

	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	result := database.GetDB().
		Preload("Specifications").
		Preload("PackagingRows").
		Preload("Images").
		First(&product, productID)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Error("Failed to load product",
				zap.Uint("product_id", productID),
				zap.Error(result.Error))
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load product")
		}
		log.Warn("Product not found", zap.Uint("product_id", productID))
	}

	prometheus.RecordProductView(
		strconv.FormatUint(uint64(productID), 10),
		strconv.FormatUint(uint64(product.CategoryID), 10))

	return c.Render(http.StatusOK, "product_detail.html", echo.Map{
		"Product":        product,
		"Specifications": product.Specifications,
		"Packaging":      product.PackagingRows,
		"Images":         product.Images,
	})
}
