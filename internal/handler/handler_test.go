package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	mid "catalog-service/internal/middleware"
	"catalog-service/internal/model"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/render"
	"catalog-service/pkg/session"
	"catalog-service/prometheus"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg, err := config.Load("catalog-service")
	if err != nil {
		panic(err)
	}
	prometheus.InitMetrics(cfg)
	session.Initialize(&cfg.Session)
	os.Exit(m.Run())
}

// newTestServer wires the full route table against an in-memory database
// with foreign keys enforced, mirroring cmd/main.go.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.SetDB(db)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	SetUploadDir(t.TempDir())

	e := echo.New()
	renderer, err := render.New("../../web/templates/*.html")
	require.NoError(t, err)
	e.Renderer = renderer

	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	e.GET("/health", Health)
	e.GET("/", Home)
	e.GET("/about", About)
	e.GET("/contact", ContactForm)
	e.POST("/contact", SubmitContact)
	e.GET("/category/:id", CategoryProducts)
	e.GET("/product/:id", ProductDetail)
	e.GET("/inquiry/:id", InquiryForm)
	e.POST("/inquiry/:id", SubmitInquiry)

	e.GET("/admin/login", LoginForm)
	e.POST("/admin/login", Login)
	e.GET("/admin/logout", Logout)

	adminPages := e.Group("/admin", mid.AdminRequired)
	adminPages.GET("/dashboard", Dashboard)
	adminPages.GET("/inquiries", ListInquiries)
	adminPages.GET("/add-product", AddProductForm)
	adminPages.POST("/add-product", AddProduct)
	adminPages.GET("/delete-product/:id", DeleteProduct)

	return e, db
}

// adminCookie returns a valid admin session cookie
func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := session.Issue("admin")
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName(), Value: token}
}

// seedCategory inserts a category and returns it
func seedCategory(t *testing.T, db *gorm.DB, name string) model.Category {
	t.Helper()
	category := model.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

// seedAdmin inserts an admin account with a bcrypt-hashed password
func seedAdmin(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Admin{Username: username, Password: string(hashed)}).Error)
}

type formFile struct {
	name    string
	content []byte
}

// multipartBody builds a multipart form with repeated fields and image files
func multipartBody(t *testing.T, fields url.Values, files []formFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, values := range fields {
		for _, value := range values {
			require.NoError(t, w.WriteField(key, value))
		}
	}
	for _, file := range files {
		fw, err := w.CreateFormFile("images", file.name)
		require.NoError(t, err)
		_, err = fw.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}
