package db

import (
	"log"
	"tbs/src/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	_db, err := gorm.Open(postgres.Open(config.GetDSN()))
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	sqlDB, err := _db.DB()
	if err != nil {
		log.Fatalf("Error establishing connection to database: %s\n", err.Error())
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	db = _db
	return _db
}

func NewDB(newdb *gorm.DB) {
	db = newdb
}

// Migrate creates or updates the schema for the given models. Cascading
// foreign keys are declared on the models themselves, so a venue delete
// takes its events and bookings with it at the database level.
func Migrate(models ...any) error {
	conn := GetDb()
	if err := conn.AutoMigrate(models...); err != nil {
		log.Printf("Error running migrations: %s\n", err.Error())
		return err
	}
	return nil
}
