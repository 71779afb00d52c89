// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by SHBOT_ENV (or .env by default), then the
// matching .secret sidecar if it exists. Every setting is a flat env var read
// through the getters below.
func Load() error {
	envFile := os.Getenv("SHBOT_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Host is the game server's host[:port], without scheme.
func Host() string {
	return getenv("SHBOT_HOST", "localhost:8080")
}

// Insecure selects ws:// and http:// instead of wss:// and https://.
func Insecure() bool {
	v, err := strconv.ParseBool(os.Getenv("SHBOT_INSECURE"))
	return err == nil && v
}

// HTTPBaseURL returns the scheme and host used for REST calls.
func HTTPBaseURL() string {
	if Insecure() {
		return "http://" + Host()
	}
	return "https://" + Host()
}

// WSBaseURL returns the scheme and host used for websocket sessions.
func WSBaseURL() string {
	if Insecure() {
		return "ws://" + Host()
	}
	return "wss://" + Host()
}

func LoginPath() string {
	return getenv("SHBOT_LOGIN_PATH", "/login")
}

func CreateGamePath() string {
	return getenv("SHBOT_CREATE_GAME_PATH", "/game")
}

func SetupPath() string {
	return getenv("SHBOT_SETUP_PATH", "/gamesetup")
}

func GameplayPath() string {
	return getenv("SHBOT_GAMEPLAY_PATH", "/gameplay")
}

// RobotPassword is the shared password of every robot account.
func RobotPassword() string {
	return os.Getenv("SHBOT_ROBOT_PASSWORD")
}

// MoveDelay is the minimum spacing between two actions of one robot.
// Defaults to 1.5s.
func MoveDelay() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("SHBOT_MOVE_DELAY_MS"))
	if err != nil || ms < 0 {
		return 1500 * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// RedisURL enables the ledger publisher when set.
func RedisURL() string {
	return os.Getenv("SHBOT_REDIS_URL")
}

// DatabaseURL enables the ledger archive when set.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// DebugAddr enables the debug HTTP server when set, e.g. ":6060".
func DebugAddr() string {
	return os.Getenv("SHBOT_DEBUG_ADDR")
}

// TuningFile is an optional YAML file overriding the weighted constants.
func TuningFile() string {
	return os.Getenv("SHBOT_TUNING_FILE")
}

// LogLevel defaults to "info".
func LogLevel() string {
	return strings.ToLower(getenv("SHBOT_LOG_LEVEL", "info"))
}

// Validate reports settings that make the robots unable to start.
func Validate() error {
	if RobotPassword() == "" {
		return fmt.Errorf("SHBOT_ROBOT_PASSWORD is required")
	}
	return nil
}
