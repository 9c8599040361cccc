package httphandler

type (
	CardView struct {
		ID          string `json:"id"`
		Category    string `json:"category"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Visible     bool   `json:"visible"`
		FadeSeq     int    `json:"fade_seq"`
	}

	ContactFormView struct {
		Name    string            `json:"name"`
		Email   string            `json:"email"`
		Phone   string            `json:"phone"`
		Subject string            `json:"subject"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors,omitempty"`
	}

	NotificationView struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}

	PageView struct {
		Cards           []CardView        `json:"cards"`
		ActiveCategory  string            `json:"active_category"`
		SearchValue     string            `json:"search_value"`
		ContactForm     ContactFormView   `json:"contact_form"`
		NewsletterEmail string            `json:"newsletter_email"`
		Notification    *NotificationView `json:"notification,omitempty"`
	}
)

type (
	FilterRequest struct {
		Category string `json:"category"`
	}

	SearchRequest struct {
		Term string `json:"term"`
	}

	ContactRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	NewsletterRequest struct {
		Email string `json:"email"`
	}
)

type (
	StatusResponse struct {
		Status string `json:"status"`
	}

	FieldErrorsResponse struct {
		Errors map[string]string `json:"errors"`
	}

	StatsResponse struct {
		Key   string `json:"key"`
		Count int64  `json:"count"`
	}
)
