package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Strings for identifiers and secrets, ints for
// durations and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	MongoURI     string // MongoDB connection URI
	MongoDB      string // MongoDB database name
	JWTSecret    string // secret used to sign auth tokens
	TokenTTLDays int    // auth token time-to-live in days
	BcryptCost   int    // bcrypt cost for password hashing

	MinioEndpoint  string // object storage host:port
	MinioAccessKey string // object storage access key
	MinioSecretKey string // object storage secret key
	MinioBucket    string // bucket holding uploaded media
	MinioUseSSL    bool   // whether to reach the object store over TLS
	MediaBaseURL   string // public base URL for uploaded objects (derived from endpoint when empty)

	PaymentKeyID     string // payment gateway key id
	PaymentKeySecret string // payment gateway key secret
	PaymentBaseURL   string // payment gateway API base URL (optional override)
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),                       // environment (dev/test/prod)
		Port:         must("APP_PORT"),                      // port to bind the HTTP server
		MongoURI:     must("MONGO_URI"),                     // document store URI
		MongoDB:      getenvDef("MONGO_DB", "media_vision"), // database name
		JWTSecret:    must("JWT_SECRET"),                    // secret used for signing tokens
		TokenTTLDays: mustInt("TOKEN_TTL_DAYS"),             // token lifetime in days
		BcryptCost:   mustInt("BCRYPT_COST"),                // bcrypt cost factor

		MinioEndpoint:  must("MINIO_ENDPOINT"),             // media host address
		MinioAccessKey: must("MINIO_ACCESS_KEY"),           // media host credentials
		MinioSecretKey: must("MINIO_SECRET_KEY"),           // media host credentials
		MinioBucket:    getenvDef("MINIO_BUCKET", "media"), // media bucket
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		MediaBaseURL:   os.Getenv("MEDIA_BASE_URL"), // optional public URL prefix

		PaymentKeyID:     must("PAYMENT_KEY_ID"),     // gateway key id
		PaymentKeySecret: must("PAYMENT_KEY_SECRET"), // gateway key secret
		PaymentBaseURL:   os.Getenv("PAYMENT_BASE_URL"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// getenvDef returns the value of an optional variable or a default.
func getenvDef(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
