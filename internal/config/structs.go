package config

import (
	"time"

	"github.com/tablecraft/tablecraft/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Redis     Redis
	Storage   Storage
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CacheEnabled        bool    // true = enable cache, false = disable cache
	DisableRecover      bool    // disable recover middleware
	Domain              string  // domain name for the webserver
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // session settings
}

// Storage holds the S3-compatible object storage settings for media uploads.
type Storage struct {
	Enabled   bool
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// BaseURL is the public URL prefix media objects are served from.
	BaseURL string
}

// Redis holds the optional content-document cache settings.
type Redis struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	// TTL for cached content documents.
	TTL time.Duration
}
