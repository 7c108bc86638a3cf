// Package actions provides the high-level logic behind CLI commands.
//
// Each action loads what it needs (configuration, logger), drives the engine
// and reports the outcome to the user.
package actions
