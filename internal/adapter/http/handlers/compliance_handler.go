package handlers

import (
	"net/http"

	response "payflow/internal/adapter/http/dto/response"
	"payflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ComplianceEventSource is any auditor that keeps an inspectable event trail.
type ComplianceEventSource interface {
	Events() []entities.ComplianceEvent
}

// ComplianceHandler exposes the in-memory compliance trail. Only registered
// when the service runs with the compliance auditor.

type ComplianceHandler struct {
	source ComplianceEventSource
}

func NewComplianceHandler(source ComplianceEventSource) *ComplianceHandler {
	return &ComplianceHandler{source: source}
}

// ListEvents returns a snapshot of the compliance trail.
//
// @Summary      List compliance events
// @Tags         compliance
// @Produce      json
// @Success      200  {array}  response.ComplianceEventResponse
// @Router       /compliance/events [get]
func (h *ComplianceHandler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromComplianceEvents(h.source.Events()))
}
