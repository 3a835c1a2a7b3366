package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	servicetypedomain "github.com/tipaniya/hisaab/internal/servicetype/domain"
)

type createServiceRequest struct {
	Type string  `json:"type"`
	Rate float64 `json:"rate"`
}

func (s *Server) CreateService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.serviceSvc.Create(c.Request.Context(), servicetypedomain.CreateServiceTypeRequest{
		Type: strings.TrimSpace(req.Type),
		Rate: req.Rate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		actor, _ := currentUser(c)
		targetID := resp.ID.String()
		details := map[string]any{
			"service_id": resp.ID.String(),
			"type":       resp.Type,
			"rate":       resp.Rate,
		}
		if actor != nil {
			s.auditSvc.Record(c.Request.Context(), &actor.ID, "service.create", "service", &targetID, details)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListServices(c *gin.Context) {
	resp, err := s.serviceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
