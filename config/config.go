package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Session SessionConfig `json:"session" yaml:"session"`

	// Admin holds the bootstrap administrator credentials
	Admin AdminConfig `json:"admin" yaml:"admin"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Mail MailConfig `json:"mail" yaml:"mail"`

	// Notifier configures how receipt emails are dispatched after a record is committed
	Notifier NotifierConfig `json:"notifier" yaml:"notifier"`

	// Worker configures the mail worker push endpoint
	Worker WorkerConfig `json:"worker" yaml:"worker"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Receipt ReceiptConfig `json:"receipt" yaml:"receipt"`
}

// DatabaseConfig selects the relational store.
type DatabaseConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

// SessionConfig defines the signed session cookie.
type SessionConfig struct {
	Secret     string        `json:"secret" yaml:"secret"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	MaxAge     time.Duration `json:"maxAge" yaml:"maxAge"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

type AdminConfig struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
	// LoginRateLimit is the number of login attempts per second allowed per client IP, 0 disables it
	LoginRateLimit float64 `json:"loginRateLimit" yaml:"loginRateLimit"`
}

// MailConfig defines the outgoing mail transport
type MailConfig struct {
	// Provider is one of "smtp", "sendgrid" or "log"
	Provider string         `json:"provider" yaml:"provider"`
	From     string         `json:"from" yaml:"from"`
	FromName string         `json:"fromName" yaml:"fromName"`
	SMTP     SMTPConfig     `json:"smtp" yaml:"smtp"`
	SendGrid SendGridConfig `json:"sendgrid" yaml:"sendgrid"`
}

type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	StartTLS bool   `json:"startTls" yaml:"startTls"`
	SSL      bool   `json:"ssl" yaml:"ssl"`
}

type SendGridConfig struct {
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	Sandbox bool   `json:"sandbox" yaml:"sandbox"`
}

// NotifierConfig defines receipt event dispatching
type NotifierConfig struct {
	// Provider type: "inline" for the in-process dispatcher, "local" for local HTTP push or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Inline dispatcher settings
	Workers     int           `json:"workers" yaml:"workers"`
	QueueSize   int           `json:"queueSize" yaml:"queueSize"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	Backoff     time.Duration `json:"backoff" yaml:"backoff"`

	// Local HTTP endpoint of the mail worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Google Cloud project and topic (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
}

type WorkerConfig struct {
	Port           int    `json:"port" yaml:"port"`
	VerifyPushAuth bool   `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	Audience       string `json:"audience" yaml:"audience"`
}

// StorageConfig defines where uploaded maintenance photos live
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///srv/portal/uploads, gs://bucket, s3://bucket
	BucketURL         string `json:"bucketUrl" yaml:"bucketUrl"`
	MaxImageDimension int    `json:"maxImageDimension" yaml:"maxImageDimension"`
}

type ReceiptConfig struct {
	QRCode bool `json:"qrCode" yaml:"qrCode"`
	QRSize int  `json:"qrSize" yaml:"qrSize"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// defaults mirrors every key an environment variable may override, so that
// env canonicalisation can find it even without a config file.
func defaults() map[string]any {
	return map[string]any{
		"env.env":                         "local",
		"env.serviceName":                 "tenant-portal",
		"env.debug":                       false,
		"env.log.level":                   "info",
		"env.log.pretty":                  false,
		"http.port":                       8080,
		"http.baseUrl":                    "http://localhost:8080",
		"http.maxRequestBodySize":         defaultMaxRequestBodySize,
		"http.timeouts.readTimeout":       "15s",
		"http.timeouts.readHeaderTimeout": "5s",
		"http.timeouts.writeTimeout":      "30s",
		"http.timeouts.idleTimeout":       "60s",
		"database.driver":                 DriverSQLite,
		"database.sqlitePath":             "portal.db",
		"database.autoMigrate":            true,
		"session.secret":                  "changeme",
		"session.cookieName":              "portal_session",
		"session.maxAge":                  "168h",
		"session.secure":                  false,
		"admin.email":                     "",
		"admin.password":                  "",
		"auth.bcryptCost":                 10,
		"auth.loginRateLimit":             5,
		"mail.provider":                   "log",
		"mail.from":                       "",
		"mail.fromName":                   "Tenant Portal",
		"mail.smtp.host":                  "smtp.gmail.com",
		"mail.smtp.port":                  587,
		"mail.smtp.username":              "",
		"mail.smtp.password":              "",
		"mail.smtp.startTls":              true,
		"mail.smtp.ssl":                   false,
		"mail.sendgrid.apiKey":            "",
		"mail.sendgrid.sandbox":           false,
		"notifier.provider":               "inline",
		"notifier.workers":                2,
		"notifier.queueSize":              100,
		"notifier.maxAttempts":            3,
		"notifier.backoff":                "2s",
		"notifier.localEndpoint":          "",
		"notifier.projectId":              "",
		"notifier.topicId":                "",
		"worker.port":                     8081,
		"worker.verifyPushAuth":           false,
		"worker.audience":                 "",
		"storage.bucketUrl":               "file://./static/uploads",
		"storage.maxImageDimension":       1600,
		"receipt.qrCode":                  true,
		"receipt.qrSize":                  256,
	}
}

// LoadWithEnv loads defaults, an optional .yaml file, a .env file and the environment through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	if err := koanfInstance.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults failed")
	}

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// The config file is optional: defaults plus environment are enough to run.
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}

		break
	}

	// .env never overrides variables already present in the process environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing keys.
			// Example: MAIL_SMTP_STARTTLS -> mail.smtp.startTls
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) normalize() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.HTTP.BaseURL = strings.TrimRight(cfg.HTTP.BaseURL, "/")

	switch cfg.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres driver selected but postgres config is missing")
		}
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	default:
		return errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	bucketURL, err := absoluteFileURL(cfg.Storage.BucketURL)
	if err != nil {
		return err
	}
	cfg.Storage.BucketURL = bucketURL

	return nil
}

// absoluteFileURL rewrites relative file:// bucket URLs, which fileblob rejects, against the working directory.
func absoluteFileURL(raw string) (string, error) {
	const scheme = "file://"
	if !strings.HasPrefix(raw, scheme) {
		return raw, nil
	}

	path := strings.TrimPrefix(raw, scheme)
	if filepath.IsAbs(path) {
		return raw, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "resolve storage path")
	}

	return scheme + filepath.ToSlash(abs), nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
