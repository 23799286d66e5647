package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTaxIDValidation(t *testing.T) {
	SetupValidator()

	type payload struct {
		TaxID string `json:"tax_id" binding:"omitempty,taxid"`
	}

	router := gin.New()
	router.POST("/check", func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"formatted CNPJ", `{"tax_id":"12.345.678/0001-90"}`, http.StatusOK},
		{"bare CNPJ", `{"tax_id":"12345678000190"}`, http.StatusOK},
		{"bare CPF", `{"tax_id":"12345678901"}`, http.StatusOK},
		{"empty is allowed", `{"tax_id":""}`, http.StatusOK},
		{"wrong length", `{"tax_id":"123456"}`, http.StatusBadRequest},
		{"letters only", `{"tax_id":"not-a-tax-id"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
