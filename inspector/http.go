package inspector

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hazyhaar/inspector/kit"
	"github.com/hazyhaar/inspector/shield"
)

// Router returns the HTTP trigger surface.
//
//	GET    /health               status, open tabs, live overlays
//	GET    /tabs                 open tabs
//	POST   /tabs/{id}/activate   make a tab active
//	POST   /commands/{name}      fire a command (202; runs in background)
//	DELETE /overlays/{id}        remove a rendered overlay
func (ins *Inspector) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	for _, mw := range shield.DefaultStack() {
		r.Use(mw)
	}
	commandLimit := shield.NewRateLimiter(shield.DefaultCommandLimit)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		active, _ := ins.ActiveTab()
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"command":  ins.Command(),
			"shortcut": ins.Shortcut(),
			"tabs":     len(ins.Tabs()),
			"active":   active,
			"overlays": ins.overlays.Live(),
		})
	})

	r.Get("/tabs", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, ins.Tabs())
	})

	r.Post("/tabs/{id}/activate", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !ins.SetActive(id) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown tab"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "active", "id": id})
	})

	r.With(commandLimit.Middleware).Post("/commands/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if !ins.triggers.Has(name) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown command"})
			return
		}
		ctx := kit.WithTransport(context.WithoutCancel(r.Context()), "http")
		ctx = kit.WithRequestID(ctx, middleware.GetReqID(r.Context()))
		go func() {
			if err := ins.Fire(ctx, name); err != nil {
				ins.logger.Error("inspector: command failed", "command", name, "error", err)
			}
		}()
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted", "command": name})
	})

	r.Delete("/overlays/{id}", func(w http.ResponseWriter, r *http.Request) {
		removed, err := ins.CloseOverlay(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		if !removed {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such overlay"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
