package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/vkc/ponto_backendl/config"
	"github.com/vkc/ponto_backendl/db"
	"github.com/vkc/ponto_backendl/internal/handlers/bot"
	"github.com/vkc/ponto_backendl/internal/repositories"
	"github.com/vkc/ponto_backendl/internal/routes"
	"github.com/vkc/ponto_backendl/internal/services/discord"
	"github.com/vkc/ponto_backendl/internal/services/moderation"
	"github.com/vkc/ponto_backendl/internal/services/sheets"
	"github.com/vkc/ponto_backendl/internal/services/shift"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.NewConfig()
	if cfg.DiscordBotToken == "" {
		log.Fatal("DISCORD_TOKEN is not set")
	}

	database := db.InitDB(cfg.DatabaseDSN)
	defer database.Close()

	redisClient := config.NewRedisClient()
	defer redisClient.Close()

	shiftRepo := repositories.NewShiftRepository(database)
	incidentRepo := repositories.NewIncidentRepository(database)

	client := discord.NewClient(cfg.DiscordBotToken)
	logbook := bot.NewLogbook(client, cfg.LogChannelID)

	tracker := shift.NewTracker(shiftRepo, cfg.Location, logbook)
	tracker.Restore()

	cache := moderation.NewTotalsCache(redisClient)
	counter := moderation.NewCounter(incidentRepo, cache)

	mirror, err := sheets.NewMirror(cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID)
	if err != nil {
		log.Printf("WARN: sheets mirror disabled: %v", err)
	}

	dispatcher := bot.NewDispatcher(cfg, client, tracker, counter, mirror)

	router := routes.Setup(cfg, shiftRepo, counter)
	go func() {
		addr := ":" + cfg.ServerPort
		log.Printf("🚀 Ops server starting on %s", addr)
		log.Fatal(http.ListenAndServe(addr, router))
	}()

	gateway := discord.NewGateway(cfg.DiscordBotToken, dispatcher)
	gateway.Run()
}
