// Package config loads runtime configuration for the gymtrack client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. GYM_* environment variables, with a .env file in the working
//     directory filling in unset ones (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend
//	-t int      request timeout (seconds)
//	-d string   data directory
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://192.168.1.107:3333",
//	  "request_timeout": "3s",
//	  "data_dir": ".gymtrack",
//	  "log_level": "info"
//	}
package config
