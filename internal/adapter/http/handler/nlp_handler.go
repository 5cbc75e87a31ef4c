package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radishdonuts/Insighta-WebSysLab/internal/usecase"
)

// NLPHandler handles ticket classification HTTP requests
type NLPHandler struct {
	nlpUC usecase.NLPUsecase
}

// NewNLPHandler creates a new nlp handler
func NewNLPHandler(nlpUC usecase.NLPUsecase) *NLPHandler {
	return &NLPHandler{nlpUC: nlpUC}
}

// Generate handles POST /nlp/generate. The success body is the flat label
// bundle rather than the error envelope, matching the original API contract.
func (h *NLPHandler) Generate(c *gin.Context) {
	var input usecase.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	output, err := h.nlpUC.Classify(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
