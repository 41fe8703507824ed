package config

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSqlite   Driver = "sqlite"
)

type Database struct {
	Driver   Driver `mapstructure:"DATABASE_DRIVER" default:"postgres"`
	Host     string `mapstructure:"DATABASE_HOST" default:"localhost"`
	Port     int    `mapstructure:"DATABASE_PORT" default:"5432"`
	Name     string `mapstructure:"DATABASE_NAME" default:"labprofile"`
	User     string `mapstructure:"DATABASE_USER" default:"postgres"`
	Password string `mapstructure:"DATABASE_PASSWORD" default:"labprofile"`
	SSLMode  string `mapstructure:"DATABASE_SSLMODE" default:"disable"`
	// only used when Driver is sqlite
	SqlitePath string `mapstructure:"DATABASE_SQLITE_PATH" default:"./labprofile.db"`
	// milliseconds, 0 disables the server side limit
	StatementTimeout int `mapstructure:"DATABASE_STATEMENT_TIMEOUT" default:"30000"`
	MaxOpenConns     int `mapstructure:"DATABASE_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns     int `mapstructure:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	// seconds
	ConnMaxLifetime int `mapstructure:"DATABASE_CONN_MAX_LIFETIME" default:"1800"`
}

type Server struct {
	Platform    string `mapstructure:"PLATFORM" default:"labprofile"`
	Service     string `mapstructure:"SERVICE" default:"api"`
	Port        int    `mapstructure:"WEB_PORT" default:"8000"`
	GrpcPort    int    `mapstructure:"GRPC_PORT" default:"9090"`
	Env         string `mapstructure:"ENV" default:"dev"`
	AutoMigrate bool   `mapstructure:"SERVER_AUTO_MIGRATE" default:"true"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}

type Trace struct {
	Version        string `mapstructure:"TRACE_VERSION" default:"0.0.1"`
	TraceEndpoint  string `mapstructure:"TRACE_TRACEENDPOINT" default:""`
	MetricEndpoint string `mapstructure:"TRACE_METRICENDPOINT" default:""`
	Insecure       bool   `mapstructure:"TRACE_INSECURE" default:"true"`
	Stdout         bool   `mapstructure:"TRACE_STDOUT" default:"false"`
}

type Swagger struct {
	Enable bool `mapstructure:"SWAGGER_ENABLE" default:"true"`
}
