package controller

import "github.com/labstack/echo/v4"

type ChatController interface {
	Send(c echo.Context) error
	History(c echo.Context) error
	Clear(c echo.Context) error
}
