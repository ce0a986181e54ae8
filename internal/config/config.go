package config

import (
	"fmt"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger در production خروجی JSON و در development خروجی خوانا می‌سازد
func InitLogger(appEnv string) (*zap.Logger, error) {
	var err error
	if appEnv == EnvProduction {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("init zap logger: %w", err)
	}

	Logger.Info("zap logger initialized", zap.String("env", appEnv))
	return Logger, nil
}
