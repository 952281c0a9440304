// Package config loads, normalizes, and validates Bender configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads and writes TOML documents, and honours environment
// fallbacks such as BENDER_QUEUE_URL. The Config type centralizes every knob
// the render-farm services and the bender-config CLI need: filesystem paths,
// message-queue connection settings, upload limits, janitor timing, and
// per-worker tuning.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
