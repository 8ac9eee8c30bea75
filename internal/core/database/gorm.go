package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

var ErrUnsupportedDriver = gorm.ErrInvalidDB

type Opts struct {
	Driver             string
	DSN                string // full DSN wins over the split fields below
	Host               string
	Port               int
	Username           string
	Password           string
	Name               string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

// NewGorm opens the single shared connection for the process lifetime.
// The schema is reconciled separately via AutoMigrate at startup.
func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.postgresDSN())
	case "mysql":
		dial = mysql.Open(o.mysqlDSN())
	default:
		return nil, ErrUnsupportedDriver
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	db = db.Session(&gorm.Session{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	return db, nil
}

// mysqlDSN assembles a go-sql-driver DSN from the split endpoint fields the
// deployment environment provides (HOST/PORT/USERNAME/PASSWORD).
func (o Opts) mysqlDSN() string {
	if o.DSN != "" {
		return o.DSN
	}
	cred := o.Username
	if o.Password != "" {
		cred += ":" + o.Password
	}
	if cred != "" {
		cred += "@"
	}
	return fmt.Sprintf("%stcp(%s:%d)/%s?parseTime=true&charset=utf8mb4", cred, o.Host, o.Port, o.Name)
}

func (o Opts) postgresDSN() string {
	if o.DSN != "" {
		return o.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		o.Host, o.Port, o.Username, o.Password, o.Name)
}
