package server

import (
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	"gorm.io/gorm"
)

const (
	contextUserIDKey = "user_id"
	contextUserKey   = "current_user"
)

// AuthRequired resolves the session cookie to a user and stores the
// user on the request context. Requests without a valid session stop
// here.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, user.ID.String())
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAdmin gates a route to admin accounts. Must run after
// AuthRequired.
func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if user.Role != authdomain.RoleAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

// authorizeUserScope checks that the requester may act on records
// belonging to the target user. Users always pass for themselves;
// admins additionally pass for drivers reporting to them.
func (s *Server) authorizeUserScope(c *gin.Context, requester *authdomain.User, targetUserID snowflake.ID) error {
	if requester.ID == targetUserID {
		return nil
	}
	if requester.Role != authdomain.RoleAdmin {
		return ErrForbidden
	}

	var target authdomain.User
	if err := s.db.WithContext(c.Request.Context()).First(&target, "id = ?", targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authdomain.ErrUserNotFound
		}
		return err
	}
	if !target.ReportsTo(requester.ID) {
		return ErrForbidden
	}
	return nil
}

func currentUser(c *gin.Context) (*authdomain.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*authdomain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
