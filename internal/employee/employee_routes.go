package employee

import (
	"github.com/gaurisankartarasia/emp-2/internal/middleware"
	"github.com/gaurisankartarasia/emp-2/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	// the dashboard consumes this under the payroll prefix
	r.GET("/payroll/list-employees",
		middleware.AuthMiddleware(),
		middleware.RBACAuthorize(rbacService, "employee", "read"),
		handler.GetOptions,
	)
}
