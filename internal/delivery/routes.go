package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(60, time.Minute),
		)

		pr.Get("/voices", h.ListVoices)
		pr.Get("/prefs/{chat_id}", h.GetPreference)
		pr.Delete("/history/{chat_id}", h.DeleteHistory)
	})
}
