package controllerImp

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/crop/schedule"
	cropservice "krishisakhi/pkg/crop/service"
	"krishisakhi/pkg/mandi"
	userrepo "krishisakhi/pkg/profile/repository"
	"krishisakhi/pkg/weather"
)

type DashboardCtrl struct {
	users   userrepo.UserRepository
	cycles  cropservice.CycleService
	weather *weather.Client
	feed    *mandi.Client
	now     func() time.Time
}

func New(users userrepo.UserRepository, cycles cropservice.CycleService, wc *weather.Client, feed *mandi.Client) *DashboardCtrl {
	return &DashboardCtrl{users: users, cycles: cycles, weather: wc, feed: feed, now: time.Now}
}

type cycleView struct {
	Cycle  entities.CropCycle   `json:"cycle"`
	Status schedule.CycleStatus `json:"status"`
}

type indicators struct {
	PestWarning    bool `json:"pest_warning"`    // high humidity favors fungal spread
	WeatherWarning bool `json:"weather_warning"` // rain expected
	SoilCardLoaded bool `json:"soil_card_loaded"`
}

type summary struct {
	Weather    *weather.Data `json:"weather"`
	Cycles     []cycleView   `json:"cycles"`
	Prices     []mandi.Price `json:"prices"`
	Indicators indicators    `json:"indicators"`
}

func (h *DashboardCtrl) Summary(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	u, err := h.users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	out := summary{Weather: weather.Default()}
	if h.weather != nil && (u.Lat != 0 || u.Lng != 0) {
		if w, err := h.weather.Fetch(u.Lat, u.Lng); err == nil {
			out.Weather = w
		} else {
			log.Printf("[dashboard] weather fetch failed: %v", err)
		}
	}

	now := h.now()
	cycles, err := h.cycles.List(phone)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	for _, cy := range cycles {
		cy := cy
		out.Cycles = append(out.Cycles, cycleView{Cycle: cy, Status: schedule.Status(&cy, now)})
	}

	if h.feed != nil {
		state := ""
		if u.FarmDetails != nil {
			state = mandi.DetectState(u.FarmDetails.Address)
		}
		if state == "" {
			state = mandi.DetectState(u.City)
		}
		if prices, err := h.feed.Prices(state, "", 10); err == nil {
			out.Prices = prices
		} else {
			log.Printf("[dashboard] mandi fetch failed: %v", err)
		}
	}

	out.Indicators = indicators{
		PestWarning:    out.Weather.Humidity > 80,
		WeatherWarning: out.Weather.IsRainy,
		SoilCardLoaded: u.SoilCard != nil,
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardCtrl) Notifications(c echo.Context) error {
	phone, _ := c.Get("phone").(string)
	u, err := h.users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	now := h.now()
	var ns []entities.Notification

	w := weather.Default()
	if h.weather != nil && (u.Lat != 0 || u.Lng != 0) {
		if got, err := h.weather.Fetch(u.Lat, u.Lng); err == nil {
			w = got
		}
	}
	ws := &entities.WeatherSummary{Condition: w.Condition, IsRainy: w.IsRainy}
	if len(w.Daily) > 0 {
		ws.MaxTemp = w.Daily[0].MaxTemp
		ws.MinTemp = w.Daily[0].MinTemp
	} else {
		ws.MaxTemp = w.Temperature
		ws.MinTemp = w.Temperature
	}
	ns = append(ns, entities.Notification{
		ID:      uuid.NewString(),
		Title:   "Today's weather",
		Time:    now.Format("03:04 PM"),
		Unread:  true,
		Kind:    "weather",
		Weather: ws,
	})

	cycles, err := h.cycles.List(phone)
	if err == nil {
		for _, cy := range cycles {
			cy := cy
			st := schedule.Status(&cy, now)
			if st.Health == schedule.HealthAttention {
				ns = append(ns, entities.Notification{
					ID:     uuid.NewString(),
					Title:  cy.CropName + " needs attention",
					Time:   now.Format("03:04 PM"),
					Unread: true,
					Kind:   "text",
					Text:   &entities.TextMessage{Body: fmt.Sprintf("You have pending tasks for %s (day %d). Open the calendar to catch up.", cy.CropName, st.DayNumber)},
				})
			}
		}
	}

	if h.feed != nil {
		state := mandi.DetectState(u.City)
		if u.FarmDetails != nil {
			if s := mandi.DetectState(u.FarmDetails.Address); s != "" {
				state = s
			}
		}
		if prices, err := h.feed.Prices(state, "", 5); err == nil && len(prices) > 0 {
			p := prices[0]
			ns = append(ns, entities.Notification{
				ID:     uuid.NewString(),
				Title:  "Mandi update: " + p.Commodity,
				Time:   now.Format("03:04 PM"),
				Unread: true,
				Kind:   "market",
				Market: &entities.MarketAlert{Crop: p.Commodity, Price: p.ModalPrice, Market: p.Market},
			})
		}
	}

	return c.JSON(http.StatusOK, ns)
}
