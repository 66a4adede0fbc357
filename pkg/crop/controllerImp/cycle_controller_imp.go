package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/ai"
	"krishisakhi/pkg/crop/schedule"
	"krishisakhi/pkg/crop/service"
	userrepo "krishisakhi/pkg/profile/repository"
	"krishisakhi/pkg/weather"
)

type CycleCtrl struct {
	cycles  service.CycleService
	users   userrepo.UserRepository
	ai      ai.Client
	weather *weather.Client
	now     func() time.Time
}

func New(cycles service.CycleService, users userrepo.UserRepository, aic ai.Client, wc *weather.Client) *CycleCtrl {
	return &CycleCtrl{cycles: cycles, users: users, ai: aic, weather: wc, now: time.Now}
}

// Recommend asks the advisor for crop suggestions grounded in the caller's
// farm profile and current weather.
func (h *CycleCtrl) Recommend(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	u, err := h.users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	w := weather.Default()
	if h.weather != nil && (u.Lat != 0 || u.Lng != 0) {
		if got, err := h.weather.Fetch(u.Lat, u.Lng); err == nil {
			w = got
		} else {
			log.Printf("[crop] weather fetch failed, using defaults: %v", err)
		}
	}

	rc := ai.RecommendContext{
		City:      u.City,
		TempC:     w.Temperature,
		Condition: w.Condition,
		Rainy:     w.IsRainy,
		Month:     h.now().Month().String(),
		Language:  u.Language,
	}
	if u.FarmDetails != nil {
		rc.Soil = u.FarmDetails.SoilType
		rc.Irrigation = u.FarmDetails.Irrigation
		rc.FarmSize = u.FarmDetails.Size + " " + u.FarmDetails.Unit
	}

	recs, err := h.ai.RecommendCrops(rc)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "advisor unavailable: " + err.Error()})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *CycleCtrl) Start(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	var rec entities.CropRecommendation
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	cycle, err := h.cycles.Start(phone, rec)
	if err != nil {
		if errors.Is(err, service.ErrCycleExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cycle)
}

func (h *CycleCtrl) List(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	cycles, err := h.cycles.List(phone)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cycles)
}

func (h *CycleCtrl) Get(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	cycle, err := h.cycles.Get(phone, c.Param("id"))
	if err != nil {
		return h.cycleErr(c, err)
	}
	return c.JSON(http.StatusOK, cycle)
}

func (h *CycleCtrl) Delete(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	if err := h.cycles.Delete(phone, c.Param("id")); err != nil {
		return h.cycleErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type toggleReq struct {
	Day        int `json:"day"`
	EventIndex int `json:"event_index"`
}

func (h *CycleCtrl) ToggleTask(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	var req toggleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	cycle, err := h.cycles.ToggleTask(phone, c.Param("id"), req.Day, req.EventIndex)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrPreviousIncomplete):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, schedule.ErrUnknownTask):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			return h.cycleErr(c, err)
		}
	}
	return c.JSON(http.StatusOK, cycle)
}

func (h *CycleCtrl) Calendar(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	days, err := h.cycles.Calendar(phone, c.Param("id"))
	if err != nil {
		return h.cycleErr(c, err)
	}
	return c.JSON(http.StatusOK, days)
}

func (h *CycleCtrl) Status(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	cycle, err := h.cycles.Get(phone, c.Param("id"))
	if err != nil {
		return h.cycleErr(c, err)
	}
	return c.JSON(http.StatusOK, schedule.Status(cycle, h.now()))
}

func (h *CycleCtrl) cycleErr(c echo.Context, err error) error {
	if errors.Is(err, service.ErrCycleNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
