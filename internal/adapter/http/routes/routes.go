package routes

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "woodshop_builds/docs" // This will be auto-generated
	"woodshop_builds/internal/adapter/http/handlers"
	repository2 "woodshop_builds/internal/adapter/persistence/repository"
	"woodshop_builds/internal/infrastructure/database"
	"woodshop_builds/internal/infrastructure/render"
	"woodshop_builds/internal/infrastructure/worker"
	"woodshop_builds/internal/usecase"
	"woodshop_builds/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db, err := database.OpenBadger()
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	buildRepo := repository2.NewBuildBadgerRepository(db)
	backupLogRepo := repository2.NewBackupLogBadgerRepository(db)

	var mirror interfaces.IRemoteMirror
	if isRemoteMirrorEnabled() {
		mirror = repository2.NewBuildDynamoMirror(database.ConnectDynamoDB())
	} else {
		log.Printf("[routes] remote mirror disabled; sync endpoints report enabled=false")
	}

	buildUseCase := usecase.NewBuildUseCase(buildRepo)
	schedulerUseCase := usecase.NewRenderSchedulerUseCase(buildRepo, render.NewPlaceholderRenderer(), stuckAfterFromEnv())
	syncUseCase := usecase.NewSyncUseCase(buildRepo, mirror, backupLogRepo)

	buildHandler := handlers.NewBuildHandler(buildUseCase, schedulerUseCase)
	estimateHandler := handlers.NewEstimateHandler()
	syncHandler := handlers.NewSyncHandler(syncUseCase)

	w := worker.New(schedulerUseCase, syncUseCase)
	if err := w.Start(); err != nil {
		log.Fatalf("Failed to start background worker: %v", err)
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBuildRoutes(v1, buildHandler)
	addEstimateRoutes(v1, estimateHandler)
	addSyncRoutes(v1, syncHandler)
}

func stuckAfterFromEnv() time.Duration {
	v := os.Getenv("RENDER_STUCK_AFTER")
	if v == "" {
		return usecase.DefaultStuckAfter
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[routes] invalid RENDER_STUCK_AFTER=%q, using default", v)
		return usecase.DefaultStuckAfter
	}
	return d
}

func isRemoteMirrorEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("REMOTE_MIRROR"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
