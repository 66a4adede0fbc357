package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"krishisakhi/config"
	"krishisakhi/database"
	"krishisakhi/router"

	// Auth + Profile
	authCtrlImp "krishisakhi/pkg/auth/controllerImp"
	profileCtrlImp "krishisakhi/pkg/profile/controllerImp"
	userRepoImp "krishisakhi/pkg/profile/repositoryImp"

	// Crop cycles
	cycleCtrlImp "krishisakhi/pkg/crop/controllerImp"
	cycleRepoImp "krishisakhi/pkg/crop/repositoryImp"
	cycleSvcImp "krishisakhi/pkg/crop/serviceImp"

	// Chat + Pest
	chatCtrlImp "krishisakhi/pkg/chat/controllerImp"
	chatRepoImp "krishisakhi/pkg/chat/repositoryImp"
	pestCtrlImp "krishisakhi/pkg/pest/controllerImp"
	pestRepoImp "krishisakhi/pkg/pest/repositoryImp"

	// Advisor LLM
	"krishisakhi/pkg/ai"

	// KB
	kbCtrlImp "krishisakhi/pkg/kb/controllerImp"
	kbEmbedder "krishisakhi/pkg/kb/embedder"
	kbRepoImp "krishisakhi/pkg/kb/repositoryImp"
	kbServiceImp "krishisakhi/pkg/kb/serviceImp"

	// External feeds
	"krishisakhi/pkg/mandi"
	mandiCtrlImp "krishisakhi/pkg/mandi/controllerImp"
	"krishisakhi/pkg/weather"
	weatherCtrlImp "krishisakhi/pkg/weather/controllerImp"

	// Offline advisor
	"krishisakhi/pkg/offline"
	offlineCtrlImp "krishisakhi/pkg/offline/controllerImp"
	offlineRepoImp "krishisakhi/pkg/offline/repositoryImp"

	// Dashboard + Health
	dashCtrlImp "krishisakhi/pkg/dashboard/controllerImp"
	healthCtrlImp "krishisakhi/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Advisor LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[main] LLM_ENDPOINT not set, using offline mock advisor")
		llm = ai.NewMock()
	}

	// 5) KB wiring; nil embedder degrades search to keyword matching
	var emb *kbEmbedder.Client
	if cfg.EmbEndpoint != "" {
		emb = kbEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	}
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbServiceImp.New(kbRepo, emb)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// 6) External feeds
	wc := weather.New(cfg.WeatherBaseURL)
	feed := mandi.New(cfg.MandiBaseURL, cfg.MandiAPIKey, cfg.MandiResource)

	// 7) Offline decision tree
	tree, err := offline.LoadTree(cfg.OfflineTree)
	if err != nil {
		log.Fatalf("load offline tree: %v", err)
	}

	// 8) Repos / services / controllers
	users := userRepoImp.New(db)
	cycleRepo := cycleRepoImp.New(db)
	cycleSvc := cycleSvcImp.NewCycleService(cycleRepo, nil)
	chatRepo := chatRepoImp.New(db)
	pestRepo := pestRepoImp.New(db)
	offlineRepo := offlineRepoImp.New(db)

	authCtrl := authCtrlImp.New(users)
	profileCtrl := profileCtrlImp.New(users, llm)
	cycleCtrl := cycleCtrlImp.New(cycleSvc, users, llm, wc)
	chatCtrl := chatCtrlImp.New(chatRepo, users, llm, kbSvc)
	pestCtrl := pestCtrlImp.New(pestRepo, users, llm)
	weatherCtrl := weatherCtrlImp.New(wc, users)
	mandiCtrl := mandiCtrlImp.New(feed, users)
	offlineCtrl := offlineCtrlImp.New(tree, offlineRepo)
	dashCtrl := dashCtrlImp.New(users, cycleSvc, wc, feed)
	healthCtrl := healthCtrlImp.New(db)

	// 9) Router
	r := router.New(
		e,
		authCtrl,
		profileCtrl,
		cycleCtrl,
		chatCtrl,
		pestCtrl,
		weatherCtrl.Current,
		mandiCtrl,
		offlineCtrl,
		dashCtrl,
		kbCtrl,
		healthCtrl,
	)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
