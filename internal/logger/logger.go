// Package logger builds the application logger.
package logger

import "go.uber.org/zap"

// New returns a zap logger appropriate for the environment: JSON
// output in production, console output everywhere else.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
