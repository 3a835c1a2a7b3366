package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	AdminID  string `json:"admin_id"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	username := strings.TrimSpace(req.Username)
	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Username:  username,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		if s.auditSvc != nil {
			s.auditSvc.Record(c.Request.Context(), nil, "user.login_failed", "user", nil, map[string]any{
				"username": username,
			})
		}
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)

	if s.auditSvc != nil {
		actorID := result.User.ID
		targetID := actorID.String()
		s.auditSvc.Record(c.Request.Context(), &actorID, "user.login", "user", &targetID, map[string]any{
			"username": username,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": result.User})
}

func (s *Server) Logout(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.authsvc.Logout(c.Request.Context(), token); err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user.View()})
}

func (s *Server) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.authsvc.CreateUser(c.Request.Context(), authdomain.CreateUserRequest{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
		FullName: strings.TrimSpace(req.FullName),
		Role:     authdomain.Role(strings.ToLower(strings.TrimSpace(req.Role))),
		AdminID:  strings.TrimSpace(req.AdminID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		actor, _ := currentUser(c)
		targetID := created.ID.String()
		details := map[string]any{
			"username": created.Username,
			"role":     string(created.Role),
		}
		if actor != nil {
			s.auditSvc.Record(c.Request.Context(), &actor.ID, "user.create", "user", &targetID, details)
		} else {
			s.auditSvc.Record(c.Request.Context(), nil, "user.create", "user", &targetID, details)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": created.View()})
}
