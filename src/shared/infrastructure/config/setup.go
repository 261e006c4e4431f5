package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig contiene la configuración compartida del servicio
type AppConfig struct {
	Port           string
	DatabaseURL    string
	StatsLocation  *time.Location
	RestaurantName string
}

// LoadEnv intenta cargar un archivo .env si existe.
// En producción las variables llegan por entorno y el archivo es opcional.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}
}

// GetEnv obtiene una variable de entorno o devuelve un valor por defecto
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadAppConfig construye la configuración del servicio desde el entorno.
// STATS_TIMEZONE define la zona horaria única usada para agrupar ventas por
// día y por hora; todos los cortes de fecha pasan por esta ubicación.
func LoadAppConfig() AppConfig {
	loc := time.Local
	if tz := os.Getenv("STATS_TIMEZONE"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("⚠️  STATS_TIMEZONE inválida (%q), usando hora local: %v", tz, err)
		} else {
			loc = parsed
		}
	}

	return AppConfig{
		Port:           GetEnv("PORT", "8080"),
		DatabaseURL:    buildDatabaseURL(),
		StatsLocation:  loc,
		RestaurantName: GetEnv("RESTAURANT_NAME", "Antojitos La Bendición"),
	}
}

func buildDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	dbHost := GetEnv("DB_HOST", "localhost")
	dbPort := GetEnv("DB_PORT", "5432")
	dbUser := GetEnv("DB_USER", "postgres")
	dbPassword := GetEnv("DB_PASSWORD", "postgres")
	dbName := GetEnv("DB_NAME", "paneldecontrol_db")

	return "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
}
