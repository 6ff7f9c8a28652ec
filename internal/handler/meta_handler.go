package handler

import (
	"net/http"

	"site-service/internal/model"

	"github.com/labstack/echo/v4"
)

// ListLanguages returns all supported language codes
func ListLanguages(c echo.Context) error {
	languages := model.Languages()
	return c.JSON(http.StatusOK, echo.Map{
		"languages": languages,
		"count":     len(languages),
	})
}

// ListCurrencies returns all supported currency codes
func ListCurrencies(c echo.Context) error {
	currencies := model.Currencies()
	return c.JSON(http.StatusOK, echo.Map{
		"currencies": currencies,
		"count":      len(currencies),
	})
}
