package increment

import (
	"github.com/gaurisankartarasia/emp-2/internal/middleware"
	"github.com/gaurisankartarasia/emp-2/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	r.GET("/increment-scheme",
		middleware.AuthMiddleware(),
		middleware.RBACAuthorize(rbacService, "increment_scheme", "read"),
		handler.GetScheme,
	)
	r.GET("/increment-report",
		middleware.AuthMiddleware(),
		middleware.RBACAuthorize(rbacService, "increment_report", "read"),
		handler.GetReport,
	)
}
