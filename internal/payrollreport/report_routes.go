package payrollreport

import (
	"github.com/gaurisankartarasia/emp-2/internal/middleware"
	"github.com/gaurisankartarasia/emp-2/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the payroll endpoints. rdb may be nil, in which case
// the initiate route runs without the idempotency guard.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.POST("/preview", middleware.RBACAuthorize(rbacService, "payroll_report", "generate"), handler.Preview)
		if rdb != nil {
			payroll.POST(
				"/initiate",
				middleware.Idempotency(rdb),
				middleware.RBACAuthorize(rbacService, "payroll_report", "generate"),
				handler.Initiate,
			)
		} else {
			payroll.POST("/initiate", middleware.RBACAuthorize(rbacService, "payroll_report", "generate"), handler.Initiate)
		}
		payroll.GET("/status/:reportId", middleware.RBACAuthorize(rbacService, "payroll_report", "read"), handler.GetStatus)
		payroll.GET("/report/:reportId", middleware.RBACAuthorize(rbacService, "payroll_report", "read"), handler.GetReport)
		payroll.GET("/recent", middleware.RBACAuthorize(rbacService, "payroll_report", "read"), handler.ListRecent)
	}
}
