package config

import "time"

// defaultConfig returns the lowest-priority configuration layer.
// Secrets, credentials and the DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     "item-api",
			TokenDuration:   30 * time.Minute,
			PasswordHashing: HashingPlain,
			LogLevel:        "debug",
		},
		Storage: Storage{
			DB: DB{
				Driver:          DriverPostgres,
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: time.Hour,
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8000",
			RequestTimeout: 30 * time.Second,
		},
		Events: Events{
			Exchange: "item.events",
		},
	}
}
