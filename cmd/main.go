package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"TimeTraveler-App/internal/domain/service"
	"TimeTraveler-App/internal/handler"
	"TimeTraveler-App/internal/infrastructure/database"
	"TimeTraveler-App/internal/infrastructure/firestore"
	"TimeTraveler-App/internal/repository"
	"TimeTraveler-App/internal/usecase"

	domainRepo "TimeTraveler-App/internal/domain/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" || supabaseAnonKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_ANON_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	// スポットカタログへの接続。DBパスワードがあれば直接PostgreSQL、なければREST経由
	var spotsRepo domainRepo.SpotsRepository
	if os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		fmt.Println("Initializing PostgreSQL client...")
		postgresClient, err := database.NewPostgreSQLClient()
		if err != nil {
			log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
		}
		defer postgresClient.Close()
		spotsRepo = repository.NewPostgresSpotsRepository(postgresClient)
		fmt.Println("✅ PostgreSQL connection successful!")
	} else {
		spotsRepo = repository.NewSupabaseSpotsRepository(supabaseClient)
	}

	routesRepo := repository.NewSupabaseRoutesRepository(supabaseClient)

	// コースプランキャッシュはFirestoreプロジェクト設定時のみ有効
	ctx := context.Background()
	var planCache domainRepo.CoursePlanCacheRepository
	if projectID := os.Getenv("GOOGLE_CLOUD_PROJECT"); projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()
		planCache = repository.NewFirestoreCoursePlanRepository(firestoreClient.GetClient())
	} else {
		fmt.Println("⚠️  GOOGLE_CLOUD_PROJECT未設定のためコースプランキャッシュは無効です")
	}

	// Dependency injection
	courseService := service.NewCourseSuggestionService(spotsRepo)
	courseUseCase := usecase.NewCourseUseCase(courseService, planCache)
	routeUseCase := usecase.NewRouteUseCase(routesRepo)

	courseHandler := handler.NewCourseHandler(courseUseCase)
	routesHandler := handler.NewRoutesHandler(routeUseCase)
	spotsHandler := handler.NewSpotsHandler(spotsRepo)

	// Ginルーターのセットアップ
	r := gin.Default()

	courses := r.Group("/courses")
	{
		courses.POST("/plans", courseHandler.PostCoursePlan)
		courses.GET("/plans/:id", courseHandler.GetCoursePlan)
	}

	routes := r.Group("/routes")
	{
		routes.POST("", routesHandler.CreateRoute)
		routes.GET("", routesHandler.GetRoutes)
		routes.GET("/:id", routesHandler.GetRouteDetail)
	}

	spots := r.Group("/spots")
	{
		spots.GET("", spotsHandler.GetSpots)
		spots.GET("/:id", spotsHandler.GetSpotDetail)
	}

	r.GET("/questions", spotsHandler.GetQuestions)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "TimeTraveler-App"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("TimeTraveler-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバー起動失敗: %v", err)
	}
}
