package handler

import (
	"catalog-service/internal/model"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/session"
	"catalog-service/prometheus"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginForm renders the admin login page
func LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_login.html", echo.Map{})
}

// Login authenticates an admin and starts a session. Unknown usernames and
// wrong passwords get the same generic rejection.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginAttemptsCounter.Inc()

	username := c.FormValue("username")
	password := c.FormValue("password")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var admin model.Admin
	result := database.GetDB().Where("username = ?", username).First(&admin)
	if result.Error != nil {
		log.Warn("Login failed: unknown username", zap.String("username", username))
		prometheus.LoginFailureCounter.Inc()
		return c.Render(http.StatusUnauthorized, "admin_login.html", echo.Map{
			"Error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		log.Warn("Login failed: invalid password", zap.String("username", username))
		prometheus.LoginFailureCounter.Inc()
		return c.Render(http.StatusUnauthorized, "admin_login.html", echo.Map{
			"Error": "Invalid credentials",
		})
	}

	if err := session.Begin(c, admin.Username); err != nil {
		log.Error("Failed to start admin session", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to start session")
	}

	prometheus.LoginSuccessCounter.Inc()
	log.Info("Admin logged in", zap.String("username", admin.Username))

	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the admin session and returns to the public site
func Logout(c echo.Context) error {
	log := logger.FromContext(c)

	session.End(c)
	log.Info("Admin logged out")

	return c.Redirect(http.StatusFound, "/")
}
