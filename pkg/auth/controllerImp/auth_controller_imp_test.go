package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"krishisakhi/entities"
)

type fakeUsers struct {
	byPhone map[string]*entities.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byPhone: map[string]*entities.User{}} }

func (f *fakeUsers) Create(u *entities.User) error {
	f.byPhone[u.Phone] = u
	return nil
}

func (f *fakeUsers) FindByPhone(phone string) (*entities.User, error) {
	if u, ok := f.byPhone[phone]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) Update(u *entities.User) error {
	f.byPhone[u.Phone] = u
	return nil
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	users := newFakeUsers()
	ctrl := New(users)

	rec := doJSON(t, ctrl.Register, http.MethodPost, `{"phone":"9876543210","name":"Anita","language":"ml"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	u, err := users.FindByPhone("9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Anita", u.Name)
	assert.Equal(t, "ml", u.Language)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "KS_PHONE=9876543210")
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	users := newFakeUsers()
	users.Create(&entities.User{Phone: "9876543210", Name: "Anita"})
	ctrl := New(users)

	rec := doJSON(t, ctrl.Register, http.MethodPost, `{"phone":"9876543210","name":"Someone"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	ctrl := New(newFakeUsers())
	rec := doJSON(t, ctrl.Register, http.MethodPost, `{"phone":"12345","name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP(t *testing.T) {
	users := newFakeUsers()
	users.Create(&entities.User{Phone: "9876543210", Name: "Anita"})
	ctrl := New(users)

	rec := doJSON(t, ctrl.VerifyOTP, http.MethodPost, `{"phone":"9876543210","otp":"1234"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "KS_PHONE=9876543210")

	rec = doJSON(t, ctrl.VerifyOTP, http.MethodPost, `{"phone":"9876543210","otp":"0000"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, ctrl.VerifyOTP, http.MethodPost, `{"phone":"1112223334","otp":"1234"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestOTPUnknownPhone(t *testing.T) {
	ctrl := New(newFakeUsers())
	rec := doJSON(t, ctrl.RequestOTP, http.MethodPost, `{"phone":"9876543210"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	ctrl := New(newFakeUsers())
	rec := doJSON(t, ctrl.Logout, http.MethodPost, ``)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "KS_PHONE=;")
}
