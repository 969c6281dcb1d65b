package database

// Config holds configuration for the inventory store connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Name is the database name, or the database file path for sqlite.
	Name string `mapstructure:"name" default:"inventory.db"`
	// Host is the database host (mysql only).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql only).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql only).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql only).
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// AutoMigrate creates the endpoints table when it is missing.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"false"`
}

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)
