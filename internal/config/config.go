package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN            string `mapstructure:"dsn"`
		MigrationsPath string `mapstructure:"migrations_path"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Session struct {
		SelectionTTL time.Duration `mapstructure:"selection_ttl"`
		ExportTTL    time.Duration `mapstructure:"export_ttl"`
	} `mapstructure:"session"`
	Storage struct {
		Provider string `mapstructure:"provider"`
	} `mapstructure:"storage"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	S3 struct {
		Endpoint  string `mapstructure:"endpoint"`
		Region    string `mapstructure:"region"`
		Bucket    string `mapstructure:"bucket"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"s3"`
	Render struct {
		ChromePath    string        `mapstructure:"chrome_path"`
		Timeout       time.Duration `mapstructure:"timeout"`
		MaxAttempts   int           `mapstructure:"max_attempts"`
		MaxUploadSize int64         `mapstructure:"max_upload_size"`
	} `mapstructure:"render"`
	Backup struct {
		Interval time.Duration `mapstructure:"interval"`
	} `mapstructure:"backup"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("kafka.group_id", "resume-archiver-group")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("session.selection_ttl", 12*time.Hour)
	v.SetDefault("session.export_ttl", 30*time.Minute)
	v.SetDefault("storage.provider", "cloudinary")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("render.timeout", 60*time.Second)
	v.SetDefault("render.max_attempts", 3)
	v.SetDefault("render.max_upload_size", 10<<20)
	v.SetDefault("backup.interval", 0)
}

// LoadConfig reads config.yaml and .env from path (if present) and overlays environment variables.
func LoadConfig(path string) (cfg Config, err error) {
	if path == "" {
		path = "."
	}

	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("db.migrations_path", "DB_MIGRATIONS_PATH")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	v.BindEnv("session.selection_ttl", "SELECTION_TTL")
	v.BindEnv("session.export_ttl", "EXPORT_TTL")
	v.BindEnv("storage.provider", "STORAGE_PROVIDER")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	v.BindEnv("s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("s3.region", "S3_REGION")
	v.BindEnv("s3.bucket", "S3_BUCKET")
	v.BindEnv("s3.access_key", "S3_ACCESS_KEY")
	v.BindEnv("s3.secret_key", "S3_SECRET_KEY")

	v.BindEnv("render.chrome_path", "CHROME_PATH")
	v.BindEnv("render.timeout", "RENDER_TIMEOUT")
	v.BindEnv("backup.interval", "BACKUP_INTERVAL")
	v.BindEnv("jaeger.otlp_endpoint", "OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	if err != nil {
		return
	}

	// KAFKA_BROKERS arrives as a single comma separated string from the environment.
	if len(cfg.Kafka.Brokers) == 1 && strings.Contains(cfg.Kafka.Brokers[0], ",") {
		cfg.Kafka.Brokers = strings.Split(cfg.Kafka.Brokers[0], ",")
	}
	return
}
