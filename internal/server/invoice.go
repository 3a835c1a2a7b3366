package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	invoicedomain "github.com/tipaniya/hisaab/internal/invoice/domain"
)

func (s *Server) GetFarmerInvoice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	// An admin may build the invoice as one of their drivers, narrowing
	// the document to that driver's entries.
	requestingUserID := user.ID.String()
	if override := strings.TrimSpace(c.Query("userId")); override != "" && override != requestingUserID {
		if user.Role != authdomain.RoleAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}
		targetID, err := snowflake.ParseString(override)
		if err != nil {
			AbortWithError(c, newValidationError("userId", "invalid_user_id", "invalid userId"))
			return
		}
		if err := s.authorizeUserScope(c, user, targetID); err != nil {
			AbortWithError(c, err)
			return
		}
		requestingUserID = targetID.String()
	}

	doc, err := s.invoiceSvc.Build(c.Request.Context(), invoicedomain.BuildRequest{
		FarmerID:         strings.TrimSpace(c.Param("farmerId")),
		RequestingUserID: requestingUserID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
}
