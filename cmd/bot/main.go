package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/randomnetcat/hitlerbot/internal/handlers/discord"
	gameRepo "github.com/randomnetcat/hitlerbot/internal/repositories/game"
	gameService "github.com/randomnetcat/hitlerbot/internal/services/game"
	"github.com/randomnetcat/hitlerbot/internal/services/messaging"
	"github.com/randomnetcat/hitlerbot/internal/shuffle"
)

func main() {
	// Load .env if present; environment variables win
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to Redis")
	}

	// Initialize repositories
	repo, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create game repository")
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// The session is shared between the bot and the messaging service
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.WithError(err).Fatal("failed to create Discord session")
	}

	messagingSvc, err := messaging.New(&messaging.Config{
		Session: session,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create messaging service")
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:  repo,
		Messaging: messagingSvc,
		Shuffler:  shuffle.New(&shuffle.Config{}),
		Logger:    log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create game service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		GameService:   gameSvc,
		Logger:        log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.WithError(err).Fatal("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.WithError(err).Error("error stopping bot")
	}

	log.Info("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
