package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	farmerdomain "github.com/tipaniya/hisaab/internal/farmer/domain"
)

type createFarmerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (s *Server) CreateFarmer(c *gin.Context) {
	var req createFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.farmerSvc.Create(c.Request.Context(), farmerdomain.CreateFarmerRequest{
		Name:    strings.TrimSpace(req.Name),
		Contact: strings.TrimSpace(req.Contact),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		actor, _ := currentUser(c)
		targetID := resp.ID.String()
		details := map[string]any{
			"farmer_id": resp.ID.String(),
			"name":      resp.Name,
		}
		if actor != nil {
			s.auditSvc.Record(c.Request.Context(), &actor.ID, "farmer.create", "farmer", &targetID, details)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListFarmers(c *gin.Context) {
	resp, err := s.farmerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetFarmerByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.farmerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
