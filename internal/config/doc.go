// Package config holds the built-in rule catalog shared by the scanners:
// rule ids, severities, messages, file globs, required readme headers and
// translation function names. The catalog is embedded YAML decoded once at
// startup; there is no user-facing configuration file.
package config
