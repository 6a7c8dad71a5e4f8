package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/projects")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", pc.CreateProject)
		v1.GET("", pc.ListProjects)
		v1.GET("/:projectId", pc.GetProject)
		v1.PUT("/:projectId", pc.UpdateProject)
		v1.DELETE("/:projectId", pc.DeleteProject)
		v1.GET("/:projectId/tags", pc.GetProjectTags)
		v1.POST("/:projectId/upload_assignment", pc.UploadAssignment)
		v1.DELETE("/:projectId/delete_assignment", pc.DeleteAssignment)
	}
}
