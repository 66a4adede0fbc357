package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"krishisakhi/pkg/mandi"
	"krishisakhi/pkg/profile/repository"
)

type MandiCtrl struct {
	feed  *mandi.Client
	users repository.UserRepository
}

func New(feed *mandi.Client, users repository.UserRepository) *MandiCtrl {
	return &MandiCtrl{feed: feed, users: users}
}

// stateFor resolves the state to query: explicit param first, then the
// caller's farm address, then their city.
func (h *MandiCtrl) stateFor(c echo.Context) string {
	if s := strings.TrimSpace(c.QueryParam("state")); s != "" {
		return s
	}
	phone, _ := c.Get("phone").(string)
	if phone == "" {
		return ""
	}
	u, err := h.users.FindByPhone(phone)
	if err != nil {
		return ""
	}
	if u.FarmDetails != nil {
		if s := mandi.DetectState(u.FarmDetails.Address); s != "" {
			return s
		}
	}
	return mandi.DetectState(u.City)
}

func (h *MandiCtrl) fetch(c echo.Context) ([]mandi.Price, error) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	prices, err := h.feed.Prices(h.stateFor(c), strings.TrimSpace(c.QueryParam("district")), limit)
	if err != nil {
		return nil, err
	}
	if commodity := strings.TrimSpace(c.QueryParam("commodity")); commodity != "" {
		filtered := prices[:0]
		for _, p := range prices {
			if strings.EqualFold(p.Commodity, commodity) {
				filtered = append(filtered, p)
			}
		}
		prices = filtered
	}
	return prices, nil
}

func (h *MandiCtrl) Prices(c echo.Context) error {
	prices, err := h.fetch(c)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, prices)
}

func (h *MandiCtrl) Export(c echo.Context) error {
	prices, err := h.fetch(c)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	f, err := mandi.ExportXLSX(prices)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="mandi_prices.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
