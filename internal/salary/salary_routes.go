package salary

import (
	"github.com/gaurisankartarasia/emp-2/internal/middleware"
	"github.com/gaurisankartarasia/emp-2/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/salary")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/components", middleware.RBACAuthorize(rbacService, "salary_component", "read"), handler.ListComponents)
		group.POST("/components", middleware.RBACAuthorize(rbacService, "salary_component", "manage"), handler.CreateComponent)
		group.PUT("/components/:id", middleware.RBACAuthorize(rbacService, "salary_component", "manage"), handler.UpdateComponent)
		group.DELETE("/components/:id", middleware.RBACAuthorize(rbacService, "salary_component", "manage"), handler.DeleteComponent)

		group.GET("/structure/:employeeId", middleware.RBACAuthorize(rbacService, "salary_structure", "read"), handler.GetStructure)
		group.POST("/structure/:employeeId", middleware.RBACAuthorize(rbacService, "salary_structure", "update"), handler.UpdateStructure)
	}
}
