// Package config loads server configuration from the environment.
//
// Recognized variables:
//   - PORT — listening port (default 3001)
//   - HOST — bind address (default all interfaces)
//   - ALLOWED_ORIGIN — the single origin granted cross-origin access
//     (default "*")
//
// A .env file, when present, is loaded by the server before config is
// read.
package config
