package controller

import "github.com/labstack/echo/v4"

type OfflineController interface {
	Tree(c echo.Context) error
	Node(c echo.Context) error
	Record(c echo.Context) error
	Sync(c echo.Context) error
}
