package controllerImp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/ai"
	"krishisakhi/pkg/profile/repository"
)

type ProfileCtrl struct {
	users repository.UserRepository
	ai    ai.Client
	now   func() time.Time
}

func New(users repository.UserRepository, aic ai.Client) *ProfileCtrl {
	return &ProfileCtrl{users: users, ai: aic, now: time.Now}
}

func (h *ProfileCtrl) load(c echo.Context) (*entities.User, error) {
	phone, _ := c.Get("phone").(string)
	u, err := h.users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "profile not found")
		}
		return nil, err
	}
	return u, nil
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	u, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

type updateReq struct {
	Name     *string  `json:"name"`
	Language *string  `json:"language"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	City     *string  `json:"city"`
}

func (h *ProfileCtrl) Update(c echo.Context) error {
	u, err := h.load(c)
	if err != nil {
		return err
	}
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Language != nil {
		u.Language = *req.Language
	}
	if req.Lat != nil {
		u.Lat = *req.Lat
	}
	if req.Lng != nil {
		u.Lng = *req.Lng
	}
	if req.City != nil {
		u.City = strings.TrimSpace(*req.City)
	}
	if err := h.users.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *ProfileCtrl) UpdateFarm(c echo.Context) error {
	u, err := h.load(c)
	if err != nil {
		return err
	}
	var farm entities.FarmDetails
	if err := c.Bind(&farm); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	for i := range farm.Crops {
		if farm.Crops[i].ID == "" {
			farm.Crops[i].ID = uuid.NewString()
		}
	}
	u.FarmDetails = &farm
	if err := h.users.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}

type soilCardReq struct {
	Data     string `json:"data"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
}

func (h *ProfileCtrl) UploadSoilCard(c echo.Context) error {
	u, err := h.load(c)
	if err != nil {
		return err
	}
	var req soilCardReq
	if err := c.Bind(&req); err != nil || req.Data == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "card image required"})
	}
	if req.MimeType == "" {
		req.MimeType = "image/jpeg"
	}

	card := &entities.SoilHealthCard{
		Data:       req.Data,
		FileName:   req.FileName,
		MimeType:   req.MimeType,
		UploadedAt: h.now(),
	}
	// best effort: a failed analysis still stores the card
	if analysis, err := h.ai.AnalyzeSoilCard(req.Data, req.MimeType, u.Language); err == nil {
		card.Analysis = analysis
	}
	u.SoilCard = card
	if err := h.users.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, card)
}

type appointmentReq struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (h *ProfileCtrl) BookAppointment(c echo.Context) error {
	u, err := h.load(c)
	if err != nil {
		return err
	}
	var req appointmentReq
	if err := c.Bind(&req); err != nil || req.Date == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date required"})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	appt := entities.Appointment{
		ID:     uuid.NewString(),
		Date:   req.Date,
		Time:   req.Time,
		Status: "Pending",
	}
	u.Appointments = append(u.Appointments, appt)
	if err := h.users.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *ProfileCtrl) CancelAppointment(c echo.Context) error {
	u, err := h.load(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	for i := range u.Appointments {
		if u.Appointments[i].ID == id {
			u.Appointments[i].Status = "Cancelled"
			if err := h.users.Update(u); err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, u.Appointments[i])
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "appointment not found"})
}

func (h *ProfileCtrl) MarkTourSeen(c echo.Context) error {
	u, err := h.load(c)
	if err != nil {
		return err
	}
	u.HasSeenTour = true
	if err := h.users.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"has_seen_tour": true})
}
