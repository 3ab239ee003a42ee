package config

// DB holds the database configuration settings.
type DB struct {
	// URI is a full PostgreSQL connection string. When set it takes
	// precedence over the individual fields below.
	URI      string
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}
