package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	config.SetDefault("APP_NAME", "freelance-hub-api")
	config.SetDefault("APP_PORT", "7720")
	config.SetDefault("WS_BATCHING", true)

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		log.Warnf("No .env file found, relying on environment variables: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetPortConfig() (port string) {
	return c.Viper.GetString("APP_PORT")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

// GetRedisConfig returns the Redis address, password and database index.
// An empty address means Redis is not configured; the app then runs with
// the in-process cache and no cross-worker broker.
func (c *Config) GetRedisConfig() (addr, password string, db int) {
	addr = c.Viper.GetString("REDIS_ADDR")
	password = c.Viper.GetString("REDIS_PASSWORD")
	db = c.Viper.GetInt("REDIS_DB")

	return addr, password, db
}

// GetBatchingConfig reports whether chat messages are bulk-inserted per
// session instead of one insert per message.
func (c *Config) GetBatchingConfig() bool {
	return c.Viper.GetBool("WS_BATCHING")
}
