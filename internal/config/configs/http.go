package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" validate:"required"`
	// MaxBodyBytes caps request bodies. Larger bodies are rejected with 413.
	MaxBodyBytes int64         `env:"MAX_BODY_BYTES" envDefault:"32768" validate:"gt=0"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	// WriteTimeout must cover a whole batch, which runs inside the request.
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
