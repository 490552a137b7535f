//go:build !integration

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/middleware"
)

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		send       func(b *ResponseBuilder)
		statusCode int
	}{
		{
			name:       "SuccessOK with a menu",
			send:       func(b *ResponseBuilder) { b.SuccessOK(sampleMenuDetail()) },
			statusCode: http.StatusOK,
		},
		{
			name:       "SuccessCreated",
			send:       func(b *ResponseBuilder) { b.SuccessCreated(sampleMenuDetail()) },
			statusCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/menus/generate", nil)
			middleware.RequestID()(c)

			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.statusCode, w.Code)
			var resp dto.SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
			assert.NotZero(t, resp.Timestamp)
			assert.NotNil(t, resp.Data)
		})
	}
}

func TestSuccessResponse_MenuShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/menus/m1", nil)

	NewResponseBuilder(c).SuccessOK(sampleMenuDetail())

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	data := raw["data"]
	assert.Contains(t, data, "menu")
	assert.Contains(t, data, "items")
	assert.Contains(t, data, "shoppingList")
}

func TestResponsePools_Reset(t *testing.T) {
	resp := getSuccessResponse()
	resp.Data = "x"
	resp.RequestID = "r"
	putSuccessResponse(resp)
	assert.Nil(t, resp.Data)
	assert.Empty(t, resp.RequestID)

	errResp := getErrorResponse()
	errResp.Error = "NOT_FOUND"
	errResp.Details = map[string]string{"reason": "Menu not found"}
	putErrorResponse(errResp)
	assert.Empty(t, errResp.Error)
	assert.Nil(t, errResp.Details)
}
