package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	entrydomain "github.com/tipaniya/hisaab/internal/entry/domain"
)

type createEntryRequest struct {
	FarmerID       string  `json:"farmer_id"`
	ServiceID      string  `json:"service_id"`
	Hours          float64 `json:"hours"`
	AmountReceived float64 `json:"amount_received"`
	Remark         string  `json:"remark"`
	EntryDate      string  `json:"entry_date"`
}

func (s *Server) CreateEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	entryDate, err := parseOptionalDate(req.EntryDate)
	if err != nil {
		AbortWithError(c, newValidationError("entry_date", "invalid_entry_date", "invalid entry_date"))
		return
	}

	resp, err := s.entrySvc.Create(c.Request.Context(), entrydomain.CreateEntryRequest{
		FarmerID:       strings.TrimSpace(req.FarmerID),
		ServiceID:      strings.TrimSpace(req.ServiceID),
		UserID:         user.ID.String(),
		Hours:          req.Hours,
		AmountReceived: req.AmountReceived,
		Remark:         strings.TrimSpace(req.Remark),
		EntryDate:      entryDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		s.auditSvc.Record(c.Request.Context(), &user.ID, "entry.create", "entry", &targetID, map[string]any{
			"entry_id":  resp.ID.String(),
			"farmer_id": resp.FarmerID.String(),
			"hours":     resp.Hours,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEntriesByUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	targetID, err := snowflake.ParseString(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		AbortWithError(c, newValidationError("userId", "invalid_user_id", "invalid userId"))
		return
	}

	if err := s.authorizeUserScope(c, user, targetID); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.entrySvc.ListByUser(c.Request.Context(), targetID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEntriesByFarmerAndUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	targetID, err := snowflake.ParseString(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		AbortWithError(c, newValidationError("userId", "invalid_user_id", "invalid userId"))
		return
	}

	if err := s.authorizeUserScope(c, user, targetID); err != nil {
		AbortWithError(c, err)
		return
	}

	farmerID := strings.TrimSpace(c.Param("farmerId"))
	resp, err := s.entrySvc.ListByFarmerAndUser(c.Request.Context(), farmerID, targetID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
