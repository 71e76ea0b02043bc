package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a zap logger for the given environment: console output with
// human-readable timestamps for "development", JSON otherwise.
func New(appEnv string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// NewNamed builds an environment-appropriate logger named after the service.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	log, err := New(appEnv)
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
