package httpadapter

import (
	"log/slog"
	"net/http"

	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
)

// handleReviews runs an individual review or, when the body carries
// clientIds, a batch. Batch responses are HTTP 200 whatever the task
// outcomes; only a malformed request or a failed setup step is an error.
func (h *Handler) handleReviews(w http.ResponseWriter, r *http.Request) {
	var body reviewBody
	if err := h.decodeJSON(w, r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	if body.isBatch() {
		h.runBatch(w, r, body)
		return
	}
	h.reviewAccount(w, r, body)
}

func (h *Handler) reviewAccount(w http.ResponseWriter, r *http.Request, body reviewBody) {
	req, err := body.individual()
	if err == nil {
		err = h.validate(req)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	date, err := h.parseDate(req.ReviewDate)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.reviews.ReviewAccount(r.Context(), port.ReviewRequest{
		ClientID:  req.ClientID,
		AccountID: req.AccountID,
		Platform:  domain.Platform(req.Platform),
		Date:      date,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.ok(w, newReviewResultView(res))
}

func (h *Handler) runBatch(w http.ResponseWriter, r *http.Request, body reviewBody) {
	req, err := body.batch()
	if err == nil {
		err = h.validate(req)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	date, err := h.parseDate(req.ReviewDate)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.batches.RunBatch(r.Context(), port.BatchRequest{
		ClientIDs: req.ClientIDs,
		Platform:  domain.Platform(req.Platform),
		Date:      date,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "batch review served",
		slog.Int("total", res.Summary.Total),
		slog.Int("errors", res.Summary.ErrorCount),
	)
	h.ok(w, newBatchView(res))
}
