// Package config loads the gitsplit configuration file.
//
// It handles:
//   - Decoding the YAML document into a typed schema
//   - Environment variable interpolation of values
//   - Normalization of scalar-or-list fields
//   - Resolution of the project and cache directories
package config
