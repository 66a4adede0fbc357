package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"krishisakhi/entities"
	"krishisakhi/pkg/offline"
	"krishisakhi/pkg/offline/repository"
)

type OfflineCtrl struct {
	tree         *offline.Tree
	interactions repository.OfflineRepository
	now          func() time.Time
}

func New(tree *offline.Tree, interactions repository.OfflineRepository) *OfflineCtrl {
	return &OfflineCtrl{tree: tree, interactions: interactions, now: time.Now}
}

func (h *OfflineCtrl) Tree(c echo.Context) error {
	return c.JSON(http.StatusOK, h.tree)
}

func (h *OfflineCtrl) Node(c echo.Context) error {
	n := h.tree.Find(c.Param("id"))
	if n == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "node not found"})
	}
	return c.JSON(http.StatusOK, n)
}

type recordReq struct {
	Path     []string `json:"path"`
	Question string   `json:"question"`
}

func (h *OfflineCtrl) Record(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	var req recordReq
	if err := c.Bind(&req); err != nil || len(req.Path) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "path required"})
	}
	for _, id := range req.Path {
		if h.tree.Find(id) == nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "unknown node in path: " + id})
		}
	}
	i := &entities.OfflineInteraction{
		ID:        uuid.NewString(),
		UserPhone: phone,
		Path:      req.Path,
		Question:  req.Question,
		CreatedAt: h.now(),
	}
	if err := h.interactions.Save(i); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, i)
}

func (h *OfflineCtrl) Sync(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	pending, err := h.interactions.Unsynced(phone)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	n, err := h.interactions.MarkSynced(phone)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"synced": n, "interactions": pending})
}
