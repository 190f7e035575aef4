// Package config reads optional YAML configuration files for the two
// server roles. Flags always win over file values; the file exists so an
// operator can keep a volume fleet's settings in one place.
package config
