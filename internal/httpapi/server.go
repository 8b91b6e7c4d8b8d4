package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fridged/internal/bus"
	"fridged/internal/fridge"
	"fridged/pkg/types"
)

// Service defines the engine methods required by the HTTP API layer.
type Service interface {
	Status() types.StatusResponse
	Inventory() []types.ItemView
	Recommend() types.Recommendations
	PlaceItem(cls types.Classification) (types.Item, error)
	RemoveItem(id, reason string) (types.Item, error)
	Ready() bool
}

// NewMux builds the daemon's HTTP surface. The bus is used to publish
// capture/button events on behalf of the hardware collaborators and to
// feed the live-event stream.
func NewMux(svc Service, b *bus.Bus) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(AccessLog)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		st := svc.Status()
		st.BusErrorsTotal = b.ErrorCount()
		writeJSON(w, http.StatusOK, st)
	})

	r.Get("/api/inventory", func(w http.ResponseWriter, r *http.Request) {
		items := svc.Inventory()
		writeJSON(w, http.StatusOK, types.InventoryResponse{Items: items, Total: len(items)})
	})

	r.Get("/api/recommendations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Recommend())
	})

	r.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		var cls types.Classification
		if !decodeJSON(w, r, &cls) {
			return
		}
		it, err := svc.PlaceItem(cls)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, it)
	})

	r.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		it, err := svc.RemoveItem(chi.URLParam(r, "id"), types.ReasonUserRequest)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, it)
	})

	r.Post("/api/button", func(w http.ResponseWriter, r *http.Request) {
		var req types.ButtonRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.ButtonType != bus.ButtonPlaceItem && req.ButtonType != bus.ButtonTakeItem {
			writeJSONError(w, http.StatusBadRequest, "button_type must be place_item or take_item")
			return
		}
		b.Publish(bus.NewEvent("httpapi", bus.ButtonPressPayload{ButtonType: req.ButtonType}, 1))
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
	})

	r.Post("/api/capture", func(w http.ResponseWriter, r *http.Request) {
		var req types.CaptureRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.ImageRef) == "" {
			writeJSONError(w, http.StatusBadRequest, "image_ref is required")
			return
		}
		if req.CameraType == "" {
			req.CameraType = bus.CameraInternal
		}
		if req.CameraType != bus.CameraInternal && req.CameraType != bus.CameraExternal {
			writeJSONError(w, http.StatusBadRequest, "camera_type must be internal or external")
			return
		}
		b.Publish(bus.NewEvent("httpapi", bus.CameraCapturePayload{
			CameraType: req.CameraType,
			ImageRef:   req.ImageRef,
		}, 1))
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
	})

	r.Get("/api/events", eventStream(b))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSON enforces content type and body size, then decodes into dst.
// Writes the error response itself and returns false when decoding fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// writeServiceError maps well-known engine errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case fridge.IsItemNotFound(err), fridge.IsNoRecommendation(err):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case fridge.IsStorageFull(err):
		writeJSONError(w, http.StatusConflict, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are gone; nothing more to do
		return
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
