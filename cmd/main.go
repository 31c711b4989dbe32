package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"YatraPlan-App/internal/application"
	"YatraPlan-App/internal/database"
	"YatraPlan-App/internal/domain/repository"
	"YatraPlan-App/internal/domain/service"
	"YatraPlan-App/internal/handler"
	infradb "YatraPlan-App/internal/infrastructure/database"
	"YatraPlan-App/internal/infrastructure/firestore"
	repoimpl "YatraPlan-App/internal/repository"
	"YatraPlan-App/internal/usecase"
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

	ctx := context.Background()

	// 候補スポットリポジトリの初期化
	// SUPABASE_DB_PASSWORD が設定されていればPostgreSQL直接接続を使用する
	var placesRepo repository.PlacesRepository
	if os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		fmt.Println("Initializing PostgreSQL client...")
		postgresClient, err := infradb.NewPostgreSQLClientWithRetry(3, 5*time.Second)
		if err != nil {
			log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
		}
		defer postgresClient.Close()
		placesRepo = repoimpl.NewPostgresPlacesRepository(postgresClient)
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

	if placesRepo == nil {
		placesRepo = repoimpl.NewSupabasePlacesRepository(supabaseClient)
	}

	// ドラフトストアの初期化（FIRESTORE_PROJECT_ID 未設定なら保存なしで動作）
	var draftRepo repository.TripDraftRepository
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()
		draftRepo = repoimpl.NewFirestoreTripDraftRepository(firestoreClient.GetClient())
	} else {
		fmt.Println("⚠️ FIRESTORE_PROJECT_ID未設定のためドラフト保存は無効です")
	}

	// サービス・ユースケース・ハンドラーの組み立て
	builder := service.NewItineraryBuilder()
	planUseCase := usecase.NewTripPlanUseCase(placesRepo, builder, draftRepo)
	planHandler := handler.NewTripPlanHandler(planUseCase)

	tripsRepo := repoimpl.NewSupabaseTripsRepository(supabaseClient)
	tripsService := application.NewTripsService(tripsRepo, placesRepo)
	tripsHandler := handler.NewTripsHandler(tripsService)

	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "YatraPlan-App"})
	})

	router.POST("/trips/plan", planHandler.PostTripPlan)
	router.GET("/drafts/:id", planHandler.GetTripDraft)
	router.POST("/trips", tripsHandler.PostTrip)
	router.GET("/trips/:id", tripsHandler.GetTrip)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("YatraPlan-App server starting on :%s...\n", port)
	log.Fatal(router.Run(":" + port))
}
