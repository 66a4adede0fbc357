package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	userrepo "krishisakhi/pkg/profile/repository"
	"krishisakhi/pkg/weather"
)

type WeatherCtrl struct {
	client *weather.Client
	users  userrepo.UserRepository
}

func New(client *weather.Client, users userrepo.UserRepository) *WeatherCtrl {
	return &WeatherCtrl{client: client, users: users}
}

// Current serves the forecast for explicit lat/lng params, or the caller's
// saved location. The default payload keeps the UI alive when open-meteo is
// down.
func (h *WeatherCtrl) Current(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		phone, _ := c.Get("phone").(string)
		u, err := h.users.FindByPhone(phone)
		if err != nil || (u.Lat == 0 && u.Lng == 0) {
			return c.JSON(http.StatusOK, weather.Default())
		}
		lat, lng = u.Lat, u.Lng
	}
	d, err := h.client.Fetch(lat, lng)
	if err != nil {
		return c.JSON(http.StatusOK, weather.Default())
	}
	return c.JSON(http.StatusOK, d)
}
