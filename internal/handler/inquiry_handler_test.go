package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"catalog-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitInquiry(t *testing.T) {
	t.Run("valid submission appends one row and redirects home", func(t *testing.T) {
		e, db := newTestServer(t)

		rec := postForm(e, "/inquiry/5", url.Values{
			"name":     {"Alice"},
			"email":    {"a@x.com"},
			"country":  {"US"},
			"quantity": {"100"},
			"message":  {"interested"},
		})

		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		var inquiries []model.Inquiry
		require.NoError(t, db.Find(&inquiries).Error)
		require.Len(t, inquiries, 1)
		assert.EqualValues(t, 5, inquiries[0].ProductID)
		assert.Equal(t, "Alice", inquiries[0].BuyerName)
		assert.WithinDuration(t, time.Now(), inquiries[0].CreatedAt, 5*time.Second)
	})

	t.Run("missing field yields 400 and no row", func(t *testing.T) {
		e, db := newTestServer(t)

		rec := postForm(e, "/inquiry/5", url.Values{
			"name":     {"Alice"},
			"email":    {"a@x.com"},
			"country":  {"US"},
			"quantity": {"100"},
			// message omitted
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "All fields are required")

		var count int64
		db.Model(&model.Inquiry{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("non-numeric product id yields 400", func(t *testing.T) {
		e, db := newTestServer(t)

		rec := postForm(e, "/inquiry/abc", url.Values{
			"name":     {"Alice"},
			"email":    {"a@x.com"},
			"country":  {"US"},
			"quantity": {"100"},
			"message":  {"interested"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var count int64
		db.Model(&model.Inquiry{}).Count(&count)
		assert.Zero(t, count)
	})
}

func TestInquiryForm(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/inquiry/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/inquiry/7"`)
}

func TestInquiriesListedNewestFirst(t *testing.T) {
	e, db := newTestServer(t)

	older := model.Inquiry{
		ProductID: 1, BuyerName: "Old", Email: "o@x.com",
		Country: "US", Quantity: "1", Message: "first",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := model.Inquiry{
		ProductID: 2, BuyerName: "New", Email: "n@x.com",
		Country: "US", Quantity: "2", Message: "second",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	req := httptest.NewRequest(http.MethodGet, "/admin/inquiries", nil)
	req.AddCookie(adminCookie(t))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "New"), strings.Index(body, "Old"))
}
