package handler

import (
	"solver-matching-engine/internal/adapter/http/dto"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/pkg/apperror"
	"solver-matching-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// SolverHandler serves the read-only solver registry views.
type SolverHandler struct {
	ledger ports.LedgerReader
}

// NewSolverHandler creates a new SolverHandler.
func NewSolverHandler(ledger ports.LedgerReader) *SolverHandler {
	return &SolverHandler{ledger: ledger}
}

// ListSolvers handles GET /api/v1/solvers: every currently active solver
// with its full registry record.
func (h *SolverHandler) ListSolvers(c *gin.Context) {
	ctx := c.Request.Context()

	addresses, err := h.ledger.GetActiveSolvers(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	solvers := make([]dto.SolverResponse, 0, len(addresses))
	for _, addr := range addresses {
		solver, err := h.ledger.GetSolver(ctx, addr)
		if err != nil {
			response.Error(c, err)
			return
		}
		solvers = append(solvers, dto.FromSolver(solver))
	}
	response.OK(c, solvers)
}

// GetSolver handles GET /api/v1/solvers/:address.
func (h *SolverHandler) GetSolver(c *gin.Context) {
	var uri dto.SolverURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("address must be a 0x-prefixed 20-byte hex address"))
		return
	}

	solver, err := h.ledger.GetSolver(c.Request.Context(), uri.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromSolver(solver))
}
