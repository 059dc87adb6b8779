package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化資料庫連線
// dsn: 資料庫連線字串
// models: 需要自動建表/遷移的結構體指標
func InitDB(dsn string, models ...interface{}) *gorm.DB {
	// 開發環境下印出所有 SQL，方便除錯
	dbLogger := logger.Default.LogMode(logger.Info)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})

	if err != nil {
		log.Fatalf("資料庫連線失敗 (Database Connection Failed): %v", err)
	}

	// 取得底層的 sqlDB 物件，設定連線池參數
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("取得底層 SQL DB 失敗: %v", err)
	}

	// 閒置連線池中連線的最大數量
	sqlDB.SetMaxIdleConns(10)
	// 開啟資料庫連線的最大數量
	sqlDB.SetMaxOpenConns(100)
	// 連線可複用的最大時間
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("資料庫連線成功 (Database Connected Successfully)")

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("自動建表出錯： %v", err)
		}
	}

	return db
}
