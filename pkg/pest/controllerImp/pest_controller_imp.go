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
	"krishisakhi/pkg/pest/repository"
	userrepo "krishisakhi/pkg/profile/repository"
)

type PestCtrl struct {
	reports repository.PestRepository
	users   userrepo.UserRepository
	ai      ai.Client
	now     func() time.Time
}

func New(reports repository.PestRepository, users userrepo.UserRepository, aic ai.Client) *PestCtrl {
	return &PestCtrl{reports: reports, users: users, ai: aic, now: time.Now}
}

type diagnoseReq struct {
	Image    string `json:"image"` // base64, no data: prefix
	MimeType string `json:"mime_type"`
	CropName string `json:"crop_name"`
}

func (h *PestCtrl) Diagnose(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	var req diagnoseReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Image) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image required"})
	}
	if req.MimeType == "" {
		req.MimeType = "image/jpeg"
	}

	language := "en"
	if u, err := h.users.FindByPhone(phone); err == nil && u.Language != "" {
		language = u.Language
	}

	diagnosis, err := h.ai.AnalyzePlantImage(req.Image, req.MimeType, language, req.CropName)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "analysis unavailable: " + err.Error()})
	}

	report := &entities.PestReport{
		ID:        uuid.NewString(),
		UserPhone: phone,
		CropName:  req.CropName,
		Diagnosis: diagnosis,
		Image:     req.Image,
		CreatedAt: h.now(),
	}
	if err := h.reports.Save(report); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, report)
}

func (h *PestCtrl) List(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	reports, err := h.reports.ListByUser(phone)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	// image payloads are large; the list view returns metadata only
	for i := range reports {
		reports[i].Image = ""
	}
	return c.JSON(http.StatusOK, reports)
}

func (h *PestCtrl) Get(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	report, err := h.reports.FindByID(c.Param("id"), phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "report not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}
