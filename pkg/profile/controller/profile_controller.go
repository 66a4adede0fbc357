package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	Get(c echo.Context) error
	Update(c echo.Context) error
	UpdateFarm(c echo.Context) error
	UploadSoilCard(c echo.Context) error
	BookAppointment(c echo.Context) error
	CancelAppointment(c echo.Context) error
	MarkTourSeen(c echo.Context) error
}
