package main

import (
	"context"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	league "github.com/wrestlepicks/league-sync/repos/league"
	mailer "github.com/wrestlepicks/league-sync/repos/mailer"

	auth "github.com/wrestlepicks/league-sync/pkg/auth"

	admin "github.com/wrestlepicks/league-sync/services/admin"
	halloffame "github.com/wrestlepicks/league-sync/services/halloffame"
	picks "github.com/wrestlepicks/league-sync/services/picks"
	standings "github.com/wrestlepicks/league-sync/services/standings"
	sync "github.com/wrestlepicks/league-sync/services/sync"
)

func main() {
	ctx := context.Background()

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	credentialsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	storageBucket := os.Getenv("FIREBASE_STORAGE_BUCKET")
	port := os.Getenv("PORT")
	allowOrigins := os.Getenv("CORS_HOSTS")
	adminPassphrase := os.Getenv("ADMIN_PASSPHRASE")
	resendKey := os.Getenv("RESEND_KEY")
	notifyEmails := os.Getenv("RESULT_NOTIFY_EMAILS")

	credentialsOption := option.WithCredentialsJSON([]byte(credentialsJSON))

	firestoreClient, err := firestore.NewClient(ctx, projectID, credentialsOption)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, nil, credentialsOption)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	uploader, err := league.NewUploader(ctx, firebaseApp, storageBucket)
	if err != nil {
		log.Fatalf("Failed to create storage uploader: %v", err)
	}

	leagueService := league.NewService(firestoreClient)
	mailerService := mailer.NewService(resendKey, splitNonEmpty(notifyEmails))
	authService := auth.NewService(adminPassphrase)

	syncService := sync.NewSyncService(leagueService)
	syncService.Start(ctx)
	defer syncService.Stop()

	standingsService := standings.NewStandingsService(syncService)
	picksService := picks.NewPicksService(leagueService, syncService)
	hallOfFameService := halloffame.NewHallOfFameService(leagueService, syncService, uploader)
	adminService := admin.NewAdminService(leagueService, standingsService, uploader, mailerService)

	config := cors.DefaultConfig()
	config.AllowOrigins = splitNonEmpty(allowOrigins)
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Access-Control-Allow-Origin"}

	router := gin.Default()
	if len(config.AllowOrigins) > 0 {
		router.Use(cors.New(config))
	}

	authRouter := router.Group("/auth/v1")
	leagueRouter := router.Group("/league/v1")
	picksRouter := router.Group("/picks/v1")
	standingsRouter := router.Group("/standings/v1")
	hallOfFameRouter := router.Group("/halloffame/v1")

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(auth.AdminMiddleware(authService)) // Apply the middleware here

	auth.NewHTTPHandler(auth.HTTPOptions{
		Service: authService,
		Router:  authRouter,
	})

	sync.NewHTTPHandler(sync.HTTPOptions{
		Service: syncService,
		Router:  leagueRouter,
	})

	picks.NewHTTPHandler(picks.HTTPOptions{
		Service: picksService,
		Router:  picksRouter,
	})

	standings.NewHTTPHandler(standings.HTTPOptions{
		Service: standingsService,
		Router:  standingsRouter,
	})

	halloffame.NewHTTPHandler(halloffame.HTTPOptions{
		Service:     hallOfFameService,
		Router:      hallOfFameRouter,
		AdminRouter: adminRouter,
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service: adminService,
		Router:  adminRouter,
	})

	if err := router.Run(":" + port); err != nil {
		log.Printf("HTTP server stopped: %v\n", err)
	}
}

func splitNonEmpty(commaSeparated string) []string {
	var parts []string
	for _, part := range strings.Split(commaSeparated, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
