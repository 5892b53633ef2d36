package config

import (
	"log"
	"os"
	"time"
)

// Config holds everything the bot and the ops API read from the environment.
type Config struct {
	DatabaseDSN string
	ServerPort  string
	JwtSecret   string

	DiscordBotToken string
	GuildID         string
	PontoChannelID  string
	LogChannelID    string
	PrisoesChannel  string
	AdminRoleID     string

	TimezoneName string
	Location     *time.Location

	AdminUser         string
	AdminPasswordHash string

	SheetsCredentialsFile string
	SheetsSpreadsheetID   string
}

// NewConfig reads the environment and returns a ready Config.
func NewConfig() *Config {
	tzName := getEnv("BOT_TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Invalid BOT_TIMEZONE %q, falling back to UTC: %v", tzName, err)
		loc = time.UTC
		tzName = "UTC"
	}

	return &Config{
		DatabaseDSN: getEnv("DATABASE_DSN", "./ponto.db"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		JwtSecret:   getEnv("JWT_SECRET", "troque-em-producao"),

		DiscordBotToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:         os.Getenv("GUILD_ID"),
		PontoChannelID:  getEnv("CANAL_PONTO", "1416969896687964190"),
		LogChannelID:    getEnv("CANAL_LOG", "1416970104507338842"),
		PrisoesChannel:  getEnv("CANAL_PRISOES", "1371206848622891129"),
		AdminRoleID:     getEnv("ADMIN_ROLE_ID", "1416970979468640287"),

		TimezoneName: tzName,
		Location:     loc,

		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		SheetsCredentialsFile: os.Getenv("SHEETS_CREDENTIALS_FILE"),
		SheetsSpreadsheetID:   os.Getenv("SHEETS_SPREADSHEET_ID"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
