package httpadapter

import (
	"net/http"

	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

// handleIgnoreWarning sets or clears the warning-ignored flag of today's
// review of an account.
func (h *Handler) handleIgnoreWarning(w http.ResponseWriter, r *http.Request) {
	var req ignoreWarningRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.validate(req); err != nil {
		h.fail(w, r, err)
		return
	}

	review, err := h.reviews.IgnoreWarning(r.Context(), port.IgnoreWarningRequest{
		ClientID:  req.ClientID,
		AccountID: req.AccountID,
		Platform:  domain.Platform(req.Platform),
		Ignored:   *req.Ignored,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, newReviewView(review, req.AccountID))
}
