package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDb() (*gorm.DB, error) {
	dbfile := os.Getenv("EXPENSES_DB")
	if dbfile == "" {
		dbfile = "expenses.db"
	}
	conn, err := gorm.Open(sqlite.Open(dbfile))
	if err != nil {
		return nil, err
	}
	if err := conn.AutoMigrate(&Expense{}); err != nil {
		return nil, err
	}
	return conn, nil
}

func seedExpenses(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&Expense{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	samples := []Expense{
		{Description: "Lunch", Amount: 15.50, Category: "Food", Date: day(15)},
		{Description: "Gas", Amount: 45.00, Category: "Transport", Date: day(16)},
		{Description: "Movie tickets", Amount: 25.00, Category: "Entertainment", Date: day(17)},
		{Description: "Groceries", Amount: 75.30, Category: "Food", Date: day(18)},
		{Description: "Electricity bill", Amount: 120.00, Category: "Bills", Date: day(19)},
	}
	return conn.Create(&samples).Error
}

func setupRouter(conn *gorm.DB) *gin.Engine {
	router := gin.Default()
	expenseHandlers(router, conn)
	expenseFormHandlers(router, conn)
	return router
}

func main() {
	conn, err := openDb()
	if err != nil {
		log.Fatalf("Error preparing database: %s\n", err.Error())
	}
	if err := seedExpenses(conn); err != nil {
		log.Printf("Error seeding sample data: %s\n", err.Error())
	}

	router := setupRouter(conn)
	router.LoadHTMLGlob("templates/*")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8002"
	}
	if err := router.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}
