package api

import (
	"github.com/spf13/viper"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
)

type Config struct {
	StorageConfig
	MailConfig
	AuthConfig
	ServerConfig
}

type StorageConfig struct {
	DatabaseURL string
}

type MailConfig struct {
	ResendAPIKey     string
	FromEmail        string
	OrganizerEmail   string
	ContactRecipient string
}

type AuthConfig struct {
	BetterAuthURL string
}

type ServerConfig struct {
	Port int
}

func ReadConfig() *Config {
	return &Config{
		StorageConfig: StorageConfig{
			DatabaseURL: getString("DATABASE_URL"),
		},
		MailConfig: MailConfig{
			ResendAPIKey:     getStringOrDefault("RESEND_API_KEY", ""),
			FromEmail:        getStringOrDefault("RESEND_FROM_EMAIL", "forms@tedxbeixinqiao.com"),
			OrganizerEmail:   getStringOrDefault("ORGANIZER_EMAIL", "frank.liang@tedxbeixinqiao.com"),
			ContactRecipient: getStringOrDefault("CONTACT_RECIPIENT_EMAIL", "info@tedxbeixinqiao.com"),
		},
		AuthConfig: AuthConfig{
			BetterAuthURL: getStringOrDefault("BETTER_AUTH_URL", ""),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
	}
}

func getString(name string) string {
	if viper.IsSet(name) {
		return viper.GetString(name)
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		return viper.GetString(name)
	}
	return def
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		return viper.GetInt(name)
	}
	return def
}
