package middlewares

import (
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"
	"foodapp-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token against the session store and
// puts the bound customer into the request context.
func AuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := authSvc.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			resp.Fail(c, err)
			c.Abort()
			return
		}
		auth, err := authSvc.ValidateToken(accessToken)
		if err != nil {
			resp.Fail(c, err)
			c.Abort()
			return
		}
		utils.SetCurrentCustomer(c, &auth.Customer)
		c.Set("accessToken", accessToken)
		c.Next()
	}
}
