package config

import (
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var configSingleton *configHolder
var configOnce sync.Once

type configHolder struct {
	config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort          string `mapstructure:"SERVER_PORT"`
	MongoURI            string `mapstructure:"MONGODB_URI"`
	MongoDatabase       string `mapstructure:"MONGODB_DATABASE"`
	TokenSecretKey      string `mapstructure:"TOKEN_SECRET_KEY"`
	EmailSenderName     string `mapstructure:"EMAIL_SENDER_NAME"`
	EmailSenderAddress  string `mapstructure:"EMAIL_SENDER_ADDRESS"`
	EmailSenderPassword string `mapstructure:"EMAIL_SENDER_PASSWORD"`
	AdminNotifyEmail    string `mapstructure:"ADMIN_NOTIFY_EMAIL"`
	CORSAllowedOrigins  string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// GetConfig loads the .env-backed config once and registers a watcher that
// reloads it in place when the file changes. Callers receive a stable pointer
// wired through the application context, never a package-level DB handle.
func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.config
}

func initConfig() {
	if configSingleton == nil {
		configOnce.Do(func() {
			configSingleton = &configHolder{}
			cf, err := loadConfig()
			if err != nil {
				log.Fatalf("error reading config: %v", err)
			}
			configSingleton.config = cf

			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					configSingleton.mu.Lock()
					*configSingleton.config = *cf
					configSingleton.mu.Unlock()
				} else {
					log.Printf("failed to reload config file: %v", err)
				}
			})
		})
	}
}

func loadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cf := &Config{}
	if err := viper.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
