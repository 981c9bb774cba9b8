package handler

import (
	"solver-matching-engine/internal/adapter/http/dto"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/pkg/apperror"
	"solver-matching-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the read-only payment views over ledger state.
type PaymentHandler struct {
	ledger  ports.LedgerReader
	matcher ports.Matcher
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ledger ports.LedgerReader, matcher ports.Matcher) *PaymentHandler {
	return &PaymentHandler{ledger: ledger, matcher: matcher}
}

// GetPayment handles GET /api/v1/payments/:id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	var uri dto.PaymentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("id must be a 0x-prefixed 32-byte hex identifier"))
		return
	}

	payment, err := h.ledger.GetPayment(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromPayment(payment))
}

// GetCandidates handles GET /api/v1/payments/:id/candidates: a matching dry
// run over the current active solver set, never touching the write path.
func (h *PaymentHandler) GetCandidates(c *gin.Context) {
	var uri dto.PaymentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("id must be a 0x-prefixed 32-byte hex identifier"))
		return
	}

	scores, err := h.matcher.Candidates(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromScores(scores))
}
