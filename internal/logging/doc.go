// Package logging constructs the zap logger used across the tool.
package logging
