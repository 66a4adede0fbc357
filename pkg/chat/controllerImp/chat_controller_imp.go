package controllerImp

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"krishisakhi/entities"
	"krishisakhi/pkg/ai"
	"krishisakhi/pkg/chat/repository"
	kbservice "krishisakhi/pkg/kb/service"
	userrepo "krishisakhi/pkg/profile/repository"
)

const historyWindow = 10

type ChatCtrl struct {
	msgs  repository.ChatRepository
	users userrepo.UserRepository
	ai    ai.Client
	kb    kbservice.KBService
}

func New(msgs repository.ChatRepository, users userrepo.UserRepository, aic ai.Client, kb kbservice.KBService) *ChatCtrl {
	return &ChatCtrl{msgs: msgs, users: users, ai: aic, kb: kb}
}

type sendReq struct {
	Message string `json:"message"`
}

func (h *ChatCtrl) Send(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	var req sendReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message required"})
	}
	msg := strings.TrimSpace(req.Message)

	language := "en"
	if u, err := h.users.FindByPhone(phone); err == nil && u.Language != "" {
		language = u.Language
	}

	history, err := h.msgs.History(phone, historyWindow)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	kbContext := ""
	if h.kb != nil {
		if ctx, err := h.kb.ContextFor(msg); err == nil {
			kbContext = ctx
		} else {
			log.Printf("[chat] kb lookup failed: %v", err)
		}
	}

	reply, err := h.ai.Chat(history, msg, language, kbContext)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "advisor unavailable: " + err.Error()})
	}

	now := time.Now()
	userMsg := &entities.ChatMessage{UserPhone: phone, Sender: "user", Text: msg, CreatedAt: now}
	botMsg := &entities.ChatMessage{UserPhone: phone, Sender: "bot", Text: reply, CreatedAt: now}
	if err := h.msgs.Save(userMsg); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.msgs.Save(botMsg); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, botMsg)
}

func (h *ChatCtrl) History(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	ms, err := h.msgs.History(phone, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ms)
}

func (h *ChatCtrl) Clear(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	if err := h.msgs.Clear(phone); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
