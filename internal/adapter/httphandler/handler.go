package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
)

// GET  /v1/page                 page snapshot (200 OK)
// POST /v1/catalog/filter       immediate category filter (200 OK, 400)
// POST /v1/catalog/search       debounced search input (202 Accepted, 400)
// POST /v1/forms/contact        contact form (200 OK, 400, 422)
// POST /v1/forms/newsletter     newsletter form (200 OK, 400, 422)
// GET  /v1/stats/{key}          interaction tally lookup (200 OK, 503)

type PageHandler struct {
	page port.PageReader
}

func RegisterPage(r chi.Router, page port.PageReader) {
	h := PageHandler{page}
	r.Get("/v1/page", h.GetPage)
}

func (h PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	const op = "PageHandler.GetPage"
	writeJSON(w, http.StatusOK, toPageView(h.page.Snapshot()), op)
}

type CatalogHandler struct {
	filterer port.CatalogFilterer
	page     port.PageReader
}

func RegisterCatalog(
	r chi.Router, filterer port.CatalogFilterer, page port.PageReader,
) {
	h := CatalogHandler{filterer, page}
	r.Post("/v1/catalog/filter", h.PostFilter)
	r.Post("/v1/catalog/search", h.PostSearch)
}

func (h CatalogHandler) PostFilter(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostFilter"
	log := slog.With("op", op)

	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.filterer.FilterByCategory(r.Context(), req.Category); err != nil {
		http.Error(w, "failed to apply filter", http.StatusServiceUnavailable)
		log.Error("failed to filter by category", "err", err)
		return
	}

	log.Info("category filter applied", "category", req.Category)
	writeJSON(w, http.StatusOK, toPageView(h.page.Snapshot()), op)
}

func (h CatalogHandler) PostSearch(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostSearch"
	log := slog.With("op", op)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.filterer.SearchInput(r.Context(), req.Term); err != nil {
		http.Error(w, "failed to accept search", http.StatusServiceUnavailable)
		log.Error("failed to accept search input", "err", err)
		return
	}

	// the evaluation is pending behind the debounce interval
	writeJSON(w, http.StatusAccepted, StatusResponse{Status: "pending"}, op)
}

type FormsHandler struct {
	contact    port.ContactSubmitter
	newsletter port.NewsletterSubscriber
}

func RegisterForms(
	r chi.Router, contact port.ContactSubmitter, newsletter port.NewsletterSubscriber,
) {
	h := FormsHandler{contact, newsletter}
	r.Post("/v1/forms/contact", h.PostContact)
	r.Post("/v1/forms/newsletter", h.PostNewsletter)
}

func (h FormsHandler) PostContact(w http.ResponseWriter, r *http.Request) {
	const op = "FormsHandler.PostContact"
	log := slog.With("op", op)

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	errs, err := h.contact.SubmitContact(r.Context(), domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		http.Error(w, "failed to submit form", http.StatusServiceUnavailable)
		log.Error("failed to submit contact form", "err", err)
		return
	}

	if len(errs) > 0 {
		log.Info("contact form blocked", "nErrors", len(errs))
		writeJSON(w, http.StatusUnprocessableEntity,
			FieldErrorsResponse{Errors: errs}, op)
		return
	}

	log.Info("contact form submitted")
	writeJSON(w, http.StatusOK, StatusResponse{Status: "sent"}, op)
}

func (h FormsHandler) PostNewsletter(w http.ResponseWriter, r *http.Request) {
	const op = "FormsHandler.PostNewsletter"
	log := slog.With("op", op)

	var req NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.newsletter.SubscribeNewsletter(r.Context(), req.Email); err != nil {
		log.Info("newsletter subscription rejected", "err", err)
		writeJSON(w, http.StatusUnprocessableEntity,
			FieldErrorsResponse{Errors: map[string]string{
				"email": "enter a valid email address",
			}}, op)
		return
	}

	log.Info("newsletter subscription accepted")
	writeJSON(w, http.StatusOK, StatusResponse{Status: "subscribed"}, op)
}

type StatsHandler struct {
	stats port.StatsReader
}

func RegisterStats(r chi.Router, stats port.StatsReader) {
	h := StatsHandler{stats}
	r.Get("/v1/stats/{key}", h.GetStats)
}

func (h StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	const op = "StatsHandler.GetStats"
	log := slog.With("op", op)

	key := chi.URLParam(r, "key")

	count, err := h.stats.GetCount(key)
	if err != nil {
		http.Error(w, "failed to read stats", http.StatusServiceUnavailable)
		log.Error("failed to get tally count", "key", key, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{Key: key, Count: count}, op)
}

func writeJSON(w http.ResponseWriter, status int, v any, op string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func toPageView(s domain.PageSnapshot) PageView {
	cards := make([]CardView, len(s.Cards))
	for i, c := range s.Cards {
		cards[i] = CardView{
			ID:          c.ID,
			Category:    c.Category,
			Title:       c.Title,
			Description: c.Description,
			Visible:     c.Visible,
			FadeSeq:     c.FadeSeq,
		}
	}

	v := PageView{
		Cards:          cards,
		ActiveCategory: s.ActiveCategory,
		SearchValue:    s.SearchValue,
		ContactForm: ContactFormView{
			Name:    s.ContactFields.Name,
			Email:   s.ContactFields.Email,
			Phone:   s.ContactFields.Phone,
			Subject: s.ContactFields.Subject,
			Message: s.ContactFields.Message,
			Errors:  s.ContactErrors,
		},
		NewsletterEmail: s.NewsletterEmail,
	}

	if s.Notification != nil {
		v.Notification = &NotificationView{
			Kind:    string(s.Notification.Kind),
			Message: s.Notification.Message,
		}
	}
	return v
}
