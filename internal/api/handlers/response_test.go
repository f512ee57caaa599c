package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Иван","extra":1}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Иван", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondNotFound(w, "не найдено")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"не найдено"}`, w.Body.String())
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	w := httptest.NewRecorder()

	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"внутренняя ошибка сервера"}`, w.Body.String())
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		Name   string `json:"clientName" validate:"required,max=5"`
		Email  string `json:"clientEmail" validate:"omitempty,email"`
		Status string `json:"status" validate:"oneof=pending confirmed"`
	}

	assert.NoError(t, ValidateStruct(request{Name: "Иван", Status: "pending"}))

	err := ValidateStruct(request{Email: "not-an-email", Status: "done"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clientName: обязательное поле")
	assert.Contains(t, err.Error(), "clientEmail: некорректный email")
	assert.Contains(t, err.Error(), "status: одно из: pending, confirmed")
}
