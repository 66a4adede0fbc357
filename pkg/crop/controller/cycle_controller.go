package controller

import "github.com/labstack/echo/v4"

type CycleController interface {
	Recommend(c echo.Context) error
	Start(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Delete(c echo.Context) error
	ToggleTask(c echo.Context) error
	Calendar(c echo.Context) error
	Status(c echo.Context) error
}
