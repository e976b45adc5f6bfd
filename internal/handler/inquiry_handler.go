package handler

import (
	"catalog-service/internal/model"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InquiryForm renders the inquiry form for a product
func InquiryForm(c echo.Context) error {
	productID, err := parseID(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "inquiry.html", echo.Map{
		"ProductID": productID,
	})
}

// SubmitInquiry appends one inquiry row for a product. All fields are
// required; there is no duplicate suppression or format validation.
func SubmitInquiry(c echo.Context) error {
	log := logger.FromContext(c)

	productID, err := parseID(c)
	if err != nil {
		return err
	}

	name := c.FormValue("name")
	email := c.FormValue("email")
	country := c.FormValue("country")
	quantity := c.FormValue("quantity")
	message := c.FormValue("message")

	if name == "" || email == "" || country == "" || quantity == "" || message == "" {
		log.Warn("Incomplete inquiry submission", zap.Uint("product_id", productID))
		return c.Render(http.StatusBadRequest, "inquiry.html", echo.Map{
			"ProductID": productID,
			"Error":     "All fields are required",
		})
	}

	inquiry := model.Inquiry{
		ProductID: productID,
		BuyerName: name,
		Email:     email,
		Country:   country,
		Quantity:  quantity,
		Message:   message,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&inquiry); result.Error != nil {
		log.Error("Failed to save inquiry",
			zap.Uint("product_id", productID),
			zap.Error(result.Error))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save inquiry")
	}

	prometheus.InquiriesCounter.Inc()
	log.Info("Inquiry submitted",
		zap.Uint("inquiry_id", inquiry.ID),
		zap.Uint("product_id", productID),
		zap.String("country", country))

	return c.Redirect(http.StatusFound, "/")
}
