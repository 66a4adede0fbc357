package router

import (
	"github.com/labstack/echo/v4"

	"krishisakhi/pkg/middleware"
)

func New(
	e *echo.Echo,
	authCtrl interface {
		Register(echo.Context) error
		RequestOTP(echo.Context) error
		VerifyOTP(echo.Context) error
		Logout(echo.Context) error
		WhoAmI(echo.Context) error
	},
	profileCtrl interface {
		Get(echo.Context) error
		Update(echo.Context) error
		UpdateFarm(echo.Context) error
		UploadSoilCard(echo.Context) error
		BookAppointment(echo.Context) error
		CancelAppointment(echo.Context) error
		MarkTourSeen(echo.Context) error
	},
	cycleCtrl interface {
		Recommend(echo.Context) error
		Start(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
		ToggleTask(echo.Context) error
		Calendar(echo.Context) error
		Status(echo.Context) error
	},
	chatCtrl interface {
		Send(echo.Context) error
		History(echo.Context) error
		Clear(echo.Context) error
	},
	pestCtrl interface {
		Diagnose(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	weatherHandler func(echo.Context) error,
	mandiCtrl interface {
		Prices(echo.Context) error
		Export(echo.Context) error
	},
	offlineCtrl interface {
		Tree(echo.Context) error
		Node(echo.Context) error
		Record(echo.Context) error
		Sync(echo.Context) error
	},
	dashCtrl interface {
		Summary(echo.Context) error
		Notifications(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
		ListDocs(echo.Context) error
		DeleteDoc(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Session())

	e.GET("/health", healthCtrl.Health)

	e.POST("/auth/register", authCtrl.Register)
	e.POST("/auth/otp/request", authCtrl.RequestOTP)
	e.POST("/auth/otp/verify", authCtrl.VerifyOTP)
	e.POST("/auth/logout", authCtrl.Logout)
	e.GET("/whoami", authCtrl.WhoAmI)

	// offline tree itself needs no login; recording and syncing do
	e.GET("/offline/tree", offlineCtrl.Tree)
	e.GET("/offline/tree/:id", offlineCtrl.Node)

	api := e.Group("", middleware.RequireUser())

	api.GET("/profile", profileCtrl.Get)
	api.PUT("/profile", profileCtrl.Update)
	api.PUT("/profile/farm", profileCtrl.UpdateFarm)
	api.POST("/profile/soil-card", profileCtrl.UploadSoilCard)
	api.POST("/profile/appointments", profileCtrl.BookAppointment)
	api.DELETE("/profile/appointments/:id", profileCtrl.CancelAppointment)
	api.POST("/profile/tour-seen", profileCtrl.MarkTourSeen)

	api.GET("/crops/recommendations", cycleCtrl.Recommend)
	api.POST("/cycles", cycleCtrl.Start)
	api.GET("/cycles", cycleCtrl.List)
	api.GET("/cycles/:id", cycleCtrl.Get)
	api.DELETE("/cycles/:id", cycleCtrl.Delete)
	api.POST("/cycles/:id/toggle", cycleCtrl.ToggleTask)
	api.GET("/cycles/:id/calendar", cycleCtrl.Calendar)
	api.GET("/cycles/:id/status", cycleCtrl.Status)

	api.POST("/chat", chatCtrl.Send)
	api.GET("/chat/history", chatCtrl.History)
	api.DELETE("/chat/history", chatCtrl.Clear)

	api.POST("/pest/diagnose", pestCtrl.Diagnose)
	api.GET("/pest/reports", pestCtrl.List)
	api.GET("/pest/reports/:id", pestCtrl.Get)

	api.GET("/weather", weatherHandler)

	api.GET("/mandi/prices", mandiCtrl.Prices)
	api.GET("/mandi/prices/export", mandiCtrl.Export)

	api.POST("/offline/interactions", offlineCtrl.Record)
	api.POST("/offline/sync", offlineCtrl.Sync)

	api.GET("/dashboard", dashCtrl.Summary)
	api.GET("/notifications", dashCtrl.Notifications)

	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)
	api.GET("/kb/docs", kbCtrl.ListDocs)
	api.DELETE("/kb/docs/:id", kbCtrl.DeleteDoc)

	return e
}
