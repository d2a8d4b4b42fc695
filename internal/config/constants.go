package config

const (
	// DefaultDatabasePath is where the portal's record store lives unless
	// DATABASE_PATH overrides it.
	DefaultDatabasePath = "./portal.db"

	// DefaultEmailDomain is the institutional suffix accepted at login.
	DefaultEmailDomain = "@christuniversity.in"
)
