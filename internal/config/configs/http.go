package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies which
// port the server will bind to. The timeouts bound request handling so a
// slow webhook invocation cannot hold a connection open indefinitely.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading the full request including the body.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
}
