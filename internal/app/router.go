package app

import (
	"mathquiz_backend/docs"
	"mathquiz_backend/internal/config"
	"mathquiz_backend/internal/middleware"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.GET("/leaderboard", c.analytics.Leaderboard)
		authGroup.GET("/questions/:id/discussion", c.social.ListPosts)
		authGroup.POST("/questions/:id/discussion", c.social.AddPost)

		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		auth.POST("/students/register", c.auth.RegisterStudent)
		auth.POST("/teachers/register", c.auth.RegisterTeacher)
		auth.POST("/students/login", c.auth.StudentLogin)
		auth.POST("/teachers/login", c.auth.TeacherLogin)

		public.GET("/questions/chapters", c.quiz.Chapters)

		public.GET("/videos", c.content.Catalog)
		public.GET("/videos/:class/:chapter", c.content.ChapterVideos)
		public.GET("/materials", c.content.ListMaterials)
		public.GET("/materials/:slug", c.content.GetMaterial)
		public.GET("/materials/:slug/pdf", c.content.MaterialPDF)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	student := rg.Group("")
	student.Use(middleware.RoleMiddleware(model.Student))

	quiz := student.Group("/quiz")
	{
		quiz.POST("/sessions", c.quiz.CreateSession)
		quiz.GET("/sessions/:id", c.quiz.GetSession)
		quiz.DELETE("/sessions/:id", c.quiz.Close)
		quiz.POST("/sessions/:id/questions/:index/start", c.quiz.StartQuestion)
		quiz.POST("/sessions/:id/questions/:index/answer", c.quiz.Answer)
		quiz.POST("/sessions/:id/questions/:index/explain", c.quiz.Explain)
		quiz.POST("/sessions/:id/progress", c.quiz.SaveProgress)
		quiz.POST("/sessions/:id/finish", c.quiz.Finish)

		quiz.GET("/progress", c.progress.GetProgress)
		quiz.PUT("/progress", c.progress.SaveProgress)
		quiz.DELETE("/progress", c.progress.ClearProgress)
		quiz.POST("/progress/resume", c.progress.Resume)
	}

	student.GET("/analytics/me", c.analytics.MyAnalytics)
	student.GET("/reports/me", c.report.MyReport)

	bookmarks := student.Group("/bookmarks")
	{
		bookmarks.GET("", c.social.ListBookmarks)
		bookmarks.POST("", c.social.AddBookmark)
		bookmarks.GET("/:questionId", c.social.IsBookmarked)
		bookmarks.DELETE("/:questionId", c.social.RemoveBookmark)
	}

	student.GET("/badges", c.badge.MyBadges)

	student.POST("/doubts", c.doubt.CreateDoubt)
	student.GET("/doubts", c.doubt.MyDoubts)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.GET("/students", c.analytics.Students)
		teacher.GET("/students/:id/analytics", c.analytics.StudentAnalytics)
		teacher.GET("/students/:id/report", c.report.StudentReport)
		teacher.GET("/class/overview", c.analytics.ClassOverview)
		teacher.GET("/class/report", c.report.ClassReport)

		teacher.GET("/doubts", c.doubt.PendingDoubts)
		teacher.POST("/doubts/:id/respond", c.doubt.Respond)

		teacher.POST("/badges", c.badge.Award)
	}
}
