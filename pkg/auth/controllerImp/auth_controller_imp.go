package controllerImp

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/middleware"
	"krishisakhi/pkg/profile/repository"
)

// mockOTP is accepted for every number until an SMS gateway is wired in.
const mockOTP = "1234"

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

type AuthCtrl struct {
	users repository.UserRepository
}

func New(users repository.UserRepository) *AuthCtrl { return &AuthCtrl{users: users} }

type registerReq struct {
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	City     string `json:"city"`
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if !phoneRe.MatchString(req.Phone) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "phone must be 10 digits"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if _, err := h.users.FindByPhone(req.Phone); err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "phone already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	u := &entities.User{
		Phone:    req.Phone,
		Name:     strings.TrimSpace(req.Name),
		Language: lang,
		Lat:      req.Lat,
		Lng:      req.Lng,
		City:     strings.TrimSpace(req.City),
	}
	if err := h.users.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	middleware.SetSession(c, u.Phone)
	return c.JSON(http.StatusCreated, u)
}

type otpReq struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

func (h *AuthCtrl) RequestOTP(c echo.Context) error {
	var req otpReq
	if err := c.Bind(&req); err != nil || !phoneRe.MatchString(strings.TrimSpace(req.Phone)) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "phone must be 10 digits"})
	}
	if _, err := h.users.FindByPhone(strings.TrimSpace(req.Phone)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "phone not registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "otp sent"})
}

func (h *AuthCtrl) VerifyOTP(c echo.Context) error {
	var req otpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	phone := strings.TrimSpace(req.Phone)
	u, err := h.users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "phone not registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if req.OTP != mockOTP {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid otp"})
	}
	middleware.SetSession(c, phone)
	return c.JSON(http.StatusOK, u)
}

func (h *AuthCtrl) Logout(c echo.Context) error {
	middleware.ClearSession(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthCtrl) WhoAmI(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	if phone == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not logged in"})
	}
	u, err := h.users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}
