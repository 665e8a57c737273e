package store

// Config selects and configures the backends a process needs
type Config struct {
	PG PGConfig
	CH CHConfig
}

// PGConfig configures the postgres seam
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	SlowQueryMs int
	LogSQL      bool
}

// CHConfig configures the clickhouse seam
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}
