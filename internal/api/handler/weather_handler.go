package handler

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/infrastructure/config"
	"github.com/mdtreza/booking-api/pkg/logger"
)

const weatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// WeatherHandler proxies current conditions for the configured city from
// OpenWeatherMap. The upstream payload is passed through untouched.
type WeatherHandler struct {
	cfg    config.WeatherConfig
	client *http.Client
}

func NewWeatherHandler(cfg config.WeatherConfig) *WeatherHandler {
	return &WeatherHandler{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Current returns the current weather for the configured city.
//
// @Summary      Current weather
// @Tags         weather
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /weather [get]
func (h *WeatherHandler) Current(c echo.Context) error {
	q := url.Values{}
	q.Set("q", h.cfg.City)
	q.Set("units", "metric")
	q.Set("appid", h.cfg.APIKey)

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, weatherEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	log := logger.Get()

	resp, err := h.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("weather upstream unreachable")
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch weather data")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("weather upstream error")
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch weather data")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch weather data")
	}

	return c.JSONBlob(http.StatusOK, body)
}
