package router

import (
	"context"
	"html/template"

	"costchef/api"
	"costchef/config"
	_ "costchef/docs"
	"costchef/middleware"
	"costchef/pricing"
	"costchef/service"
	"costchef/web"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由，ctx 结束时停止中间件的后台任务
func SetupRouter(ctx context.Context, cfg *config.Config, svc *service.Services, tokens *middleware.TokenManager) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.Default()
	// 结果页参数可能包含编码后的斜杠
	r.UseRawPath = true
	r.UnescapePathValues = true

	r.Use(middleware.RequestID())
	r.Use(CORSMiddleware())
	r.Use(middleware.OptionalAuth(tokens))

	r.SetHTMLTemplate(loadTemplates())

	kitchen := api.NewKitchenHandler(svc)
	authHandler := api.NewAuthHandler(svc.Accounts, tokens)
	exportHandler := api.NewExportHandler(svc.Reports)
	adminHandler := api.NewAdminHandler(svc.Admin, svc.Email)

	// 库存录入：GET 匿名可看，POST 需登录
	r.GET("/", kitchen.InventoryForm)
	r.POST("/", kitchen.AddItem)

	r.GET("/food_cost/:results", api.ShowResult)
	r.POST("/food_cost/:results", api.ShowResult)

	r.GET("/portion.html", kitchen.PortionForm)
	r.POST("/portion.html", kitchen.QuotePortion)

	r.GET("/dish.html", kitchen.DishForm)
	r.POST("/dish.html", kitchen.AddIngredient)

	r.GET("/get_numbers.html", kitchen.MenuNumbersForm)
	r.POST("/get_numbers.html", kitchen.ComputeMenuNumbers)

	r.GET("/data_content.html", kitchen.ListMenu)
	r.GET("/inventory.html", kitchen.ListInventory)

	r.GET("/recipes.html", kitchen.RecipeForm)
	r.POST("/recipes.html", kitchen.GetRecipe)

	// 账号
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login",
		middleware.LoginRateLimit(ctx, cfg.Security.LoginMaxAttempts, cfg.Security.LoginWindow()),
		authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.POST("/logout", authHandler.Logout)
	r.GET("/profile", middleware.JWTAuth(tokens), authHandler.GetProfile)

	// 导出
	export := r.Group("/export")
	{
		export.GET("/inventory.csv", exportHandler.ExportInventoryCSV)
		export.GET("/menu.xlsx", exportHandler.ExportMenuExcel)
	}

	// 后台：仅管理员
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuth(tokens), middleware.AdminOnly())
	{
		admin.GET("", adminHandler.Overview)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/food-items", adminHandler.ListFoodItems)
		admin.DELETE("/food-items/:id", adminHandler.DeleteFoodItem)
		admin.GET("/menu-dishes", adminHandler.ListMenuDishes)
		admin.DELETE("/menu-dishes/:id", adminHandler.DeleteMenuDish)
		admin.GET("/menu-numbers", adminHandler.ListMenuNumbers)
		admin.DELETE("/menu-numbers/:id", adminHandler.DeleteMenuNumbers)
		admin.POST("/email/test", adminHandler.SendTestEmail)
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// loadTemplates 解析内嵌页面模板
func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"money": func(v decimal.Decimal) string {
			return pricing.Money(v)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(web.Templates, "templates/*.html"))
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
