package config

import (
	"fmt"

	"postcms/internal/core/category"
	"postcms/internal/core/post"
	"postcms/internal/core/user"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB اتصال به MySQL و اجرای مایگریشن‌ها
func InitDB(dsn, appEnv string) (*gorm.DB, error) {
	logLevel := logger.Info
	if appEnv == EnvProduction {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// هر عملیات یک نوشتن است؛ تراکنش پیش‌فرض لازم نیست
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&user.User{}, &category.Category{}, &post.Post{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// CloseDB بستن *sql.DB زیرین
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get raw db: %w", err)
	}
	return sqlDB.Close()
}
