package restserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Kamalbura/AQI/internal/constants"
	"github.com/Kamalbura/AQI/internal/log"
	"github.com/Kamalbura/AQI/pkg/aqi"
	"github.com/Kamalbura/AQI/pkg/responseformat"
	"github.com/gorilla/mux"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

type currentResponse struct {
	LastUpdated time.Time            `json:"lastUpdated"`
	Stale       bool                 `json:"stale"`
	Reading     aqi.ProcessedReading `json:"reading"`
}

type historyResponse struct {
	LastUpdated time.Time              `json:"lastUpdated"`
	Stale       bool                   `json:"stale"`
	Count       int                    `json:"count"`
	Readings    []aqi.ProcessedReading `json:"readings"`
}

type aggregateResponse struct {
	LastUpdated time.Time             `json:"lastUpdated"`
	Stale       bool                  `json:"stale"`
	Period      string                `json:"period"`
	Buckets     []aqi.AggregateBucket `json:"buckets"`
}

type healthResponse struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	UptimeSeconds int64      `json:"uptimeSeconds"`
	LastFetch     *time.Time `json:"lastFetch"`
	Stale         bool       `json:"stale"`
}

// GetCurrent returns the newest processed reading.
func (h *Handlers) GetCurrent(w http.ResponseWriter, req *http.Request) {
	snap, fresh := h.controller.cache.Get()
	if snap == nil {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "no sensor data has been fetched yet")
		return
	}

	reading, ok := h.controller.cache.Latest()
	if !ok {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "feed returned no readings")
		return
	}

	err := h.formatter.WriteResponse(w, req, currentResponse{
		LastUpdated: snap.FetchedAt,
		Stale:       !fresh,
		Reading:     reading,
	}, map[string]string{
		"Cache-Control": fmt.Sprintf("max-age=%d", int(h.controller.cache.TTL().Seconds())),
	})
	if err != nil {
		log.Errorf("error encoding current reading response: %v", err)
	}
}

// GetHistory returns every reading of the cached snapshot, oldest first.
func (h *Handlers) GetHistory(w http.ResponseWriter, req *http.Request) {
	snap, fresh := h.controller.cache.Get()
	if snap == nil {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "no sensor data has been fetched yet")
		return
	}

	err := h.formatter.WriteResponse(w, req, historyResponse{
		LastUpdated: snap.FetchedAt,
		Stale:       !fresh,
		Count:       len(snap.Readings),
		Readings:    snap.Readings,
	}, nil)
	if err != nil {
		log.Errorf("error encoding history response: %v", err)
	}
}

// GetAggregate returns time-bucketed statistics over the cached readings.
// The bucket width comes from the {period} path variable; unrecognized
// specs fall back to one hour inside the aggregator.
func (h *Handlers) GetAggregate(w http.ResponseWriter, req *http.Request) {
	snap, fresh := h.controller.cache.Get()
	if snap == nil {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "no sensor data has been fetched yet")
		return
	}

	period := mux.Vars(req)["period"]
	buckets := aqi.Aggregate(snap.Readings, period)

	// Responses stay valid for a fraction of the bucket width, capped so
	// day-wide buckets don't pin clients to hour-old data.
	maxAge := int(aqi.ParsePeriod(period).Seconds()) / 4
	if maxAge < 60 {
		maxAge = 60
	}
	if maxAge > 3600 {
		maxAge = 3600
	}

	err := h.formatter.WriteResponse(w, req, aggregateResponse{
		LastUpdated: snap.FetchedAt,
		Stale:       !fresh,
		Period:      period,
		Buckets:     buckets,
	}, map[string]string{
		"Cache-Control": fmt.Sprintf("max-age=%d", maxAge),
	})
	if err != nil {
		log.Errorf("error encoding aggregate response: %v", err)
	}
}

// GetHealth reports server liveness and cache freshness.
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	resp := healthResponse{
		Status:        "ok",
		Version:       constants.Version,
		UptimeSeconds: int64(time.Since(h.controller.startedAt).Seconds()),
	}

	if snap, fresh := h.controller.cache.Get(); snap != nil {
		t := snap.FetchedAt
		resp.LastFetch = &t
		resp.Stale = !fresh
	}

	if err := h.formatter.WriteResponse(w, req, resp, nil); err != nil {
		log.Errorf("error encoding health response: %v", err)
	}
}
