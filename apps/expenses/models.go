package main

import (
	"time"
)

var validCategories = []string{"Food", "Transport", "Entertainment", "Shopping", "Bills", "Other"}

type Expense struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null" json:"category"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// The create and update payloads are identical: updates replace the whole
// record rather than merging fields.
type ExpenseRequestBody struct {
	Description string  `json:"description" binding:"required" form:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0" form:"amount"`
	Category    string  `json:"category" binding:"required,oneof=Food Transport Entertainment Shopping Bills Other" form:"category"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02" form:"date"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type TotalResponse struct {
	TotalAmount       float64         `json:"total_amount"`
	CategoryBreakdown []CategoryTotal `json:"category_breakdown"`
}
