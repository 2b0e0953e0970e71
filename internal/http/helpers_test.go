package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParsePositionParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "position", Value: "3"}}

	position, ok := parsePositionParam(c, "position")

	assert.True(t, ok)
	assert.Equal(t, 3, position)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParsePositionParam_Invalid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "position", Value: "abc"}}

	_, ok := parsePositionParam(c, "position")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid position")
}

func TestParsePositionParam_NegativeIsLeftToTheCatalog(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "position", Value: "-1"}}

	position, ok := parsePositionParam(c, "position")

	assert.True(t, ok)
	assert.Equal(t, -1, position)
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 25},
		{"?page=3&limit=10", 3, 10},
		{"?page=0&limit=1000", 1, 25},
		{"?page=abc&limit=-5", 1, 25},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)

			page, limit := parsePagination(c, 25, 100)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestIsHTMXRequest(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, isHTMXRequest(c))

	c.Request.Header.Set("HX-Request", "true")
	assert.True(t, isHTMXRequest(c))
}
