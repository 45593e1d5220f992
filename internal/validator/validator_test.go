package validator

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name" binding:"required"`
	Count *int   `json:"count" binding:"required"`
}

func bindBody(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p payload
	return c.ShouldBindJSON(&p)
}

func TestTranslateErrors_UsesJSONNames(t *testing.T) {
	Setup()

	err := bindBody(t, `{"count": 1}`)
	require.Error(t, err)
	assert.False(t, IsMalformed(err))

	fields := TranslateErrors(err)
	require.Contains(t, fields, "name")
	assert.Equal(t, "name is a required field", fields["name"])
}

func TestIsMalformed(t *testing.T) {
	Setup()

	tests := []struct {
		name string
		body string
	}{
		{"syntax error", `{"name": `},
		{"empty body", ``},
		{"wrong type", `{"name": 3, "count": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindBody(t, tt.body)
			require.Error(t, err)
			assert.True(t, IsMalformed(err))
			assert.Contains(t, TranslateErrors(err), "detail")
		})
	}

	assert.False(t, IsMalformed(nil))
}

func TestBind_Success(t *testing.T) {
	Setup()
	assert.NoError(t, bindBody(t, `{"name": "x", "count": 0}`))
}
