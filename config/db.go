package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"diveshop-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "diveshop_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// openDialector picks the storage variant: MySQL by default, SQLite when
// DB_DRIVER=sqlite (the lightweight single-file deployment).
func openDialector() (gorm.Dialector, error) {
	driver := strings.ToLower(envOrDefault("DB_DRIVER", "mysql"))
	switch driver {
	case "sqlite", "sqlite3":
		path := envOrDefault("SQLITE_PATH", "diveshop.db")
		return sqlite.Open(path), nil
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func ConnectDatabase() error {
	dialector, err := openDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Instructor{},
		&models.Boat{},
		&models.Diver{},
		&models.Course{},
		&models.Group{},
		&models.GroupMember{},
		&models.DiveSite{},
		&models.GroupItinerary{},
		&models.Accommodation{},
		&models.Booking{},
		&models.Equipment{},
		&models.RentalAssignment{},
		&models.Waiver{},
	)
}

// SeedDatabase inserts a handful of starter divers on an empty database.
func SeedDatabase(db *gorm.DB) {
	var diverCount int64
	db.Model(&models.Diver{}).Count(&diverCount)
	if diverCount > 0 {
		return
	}

	divers := []models.Diver{
		{Name: "John Smith", Email: "john@example.com"},
		{Name: "Sarah Johnson", Email: "sarah@example.com"},
		{Name: "Mike Davis", Email: "mike@example.com"},
		{Name: "Emily Brown", Email: "emily@example.com"},
		{Name: "Alex Lee", Email: "alex@example.com"},
	}
	if err := db.Create(&divers).Error; err != nil {
		log.Printf("warning: failed to seed divers: %v", err)
		return
	}
	log.Println("Divers seeded")
}
