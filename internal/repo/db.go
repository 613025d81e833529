package repo

import (
	"ShopFront/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath используется, если строка подключения не задана.
const DefaultSQLitePath = "shopfront.db"

// InitDB открывает БД по DSN и выполняет миграции моделей.
// postgres:// и postgresql:// идут через драйвер Postgres, всё остальное считается путём к SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	dial := dialectorFor(dsn)
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if dial.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sql db: %w", err)
		}
		// SQLite: одно соединение на файл, записи идут последовательно
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы users, items, cart_items.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.CartItem{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	if dsn == "" {
		dsn = DefaultSQLitePath
	}
	// modernc.org/sqlite регистрирует драйвер под именем "sqlite" (без cgo)
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: withBusyTimeout(dsn)}
}

// withBusyTimeout добавляет к DSN modernc ожидание блокировки вместо мгновенного SQLITE_BUSY.
func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)"
}
