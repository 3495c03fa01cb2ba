package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func expenseID(ctx *gin.Context) (uint, bool) {
	atoi, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || atoi < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense id"})
		return 0, false
	}
	return uint(atoi), true
}

func findExpense(ctx *gin.Context, conn *gorm.DB, id uint) (*Expense, bool) {
	var expense Expense
	if err := conn.First(&expense, id).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return nil, false
	}
	return &expense, true
}

func expenseFromBody(body *ExpenseRequestBody) Expense {
	date, _ := time.Parse(dateLayout, body.Date)
	return Expense{
		Description: body.Description,
		Amount:      body.Amount,
		Category:    body.Category,
		Date:        date,
	}
}

func expenseHandlers(g *gin.Engine, conn *gorm.DB) {
	api := g.Group("/api")
	api.GET("/expenses", func(ctx *gin.Context) {
		var query struct {
			StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
			EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
		}
		if err := ctx.ShouldBindQuery(&query); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		q := conn.Model(&Expense{})
		if query.StartDate != "" {
			start, _ := time.Parse(dateLayout, query.StartDate)
			q = q.Where("date >= ?", start)
		}
		if query.EndDate != "" {
			end, _ := time.Parse(dateLayout, query.EndDate)
			q = q.Where("date <= ?", end)
		}
		var expenses []Expense
		if err := q.Order("date desc").Find(&expenses).Error; err != nil {
			log.Printf("Error retrieving Expenses: %s\n", err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, expenses)
	})
	api.POST("/expenses", func(ctx *gin.Context) {
		var body ExpenseRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		expense := expenseFromBody(&body)
		if err := conn.Create(&expense).Error; err != nil {
			log.Printf("Error creating Expense: %s\n", err.Error())
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusCreated, expense)
	})
	api.PUT("/expenses/:id", func(ctx *gin.Context) {
		id, ok := expenseID(ctx)
		if !ok {
			return
		}
		var body ExpenseRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		expense, found := findExpense(ctx, conn, id)
		if !found {
			return
		}
		replacement := expenseFromBody(&body)
		replacement.ID = expense.ID
		replacement.CreatedAt = expense.CreatedAt
		if err := conn.Save(&replacement).Error; err != nil {
			log.Printf("Error updating Expense: %s\n", err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, replacement)
	})
	api.DELETE("/expenses/:id", func(ctx *gin.Context) {
		id, ok := expenseID(ctx)
		if !ok {
			return
		}
		if _, found := findExpense(ctx, conn, id); !found {
			return
		}
		if err := conn.Delete(&Expense{}, id).Error; err != nil {
			log.Printf("Error deleting Expense: %s\n", err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.Status(http.StatusNoContent)
	})
	api.GET("/expenses/category/:category", func(ctx *gin.Context) {
		var expenses []Expense
		if err := conn.
			Where("category = ?", ctx.Param("category")).
			Order("date desc").
			Find(&expenses).
			Error; err != nil {
			log.Printf("Error retrieving Expenses by category: %s\n", err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, expenses)
	})
	api.GET("/expenses/total", func(ctx *gin.Context) {
		var total float64
		if err := conn.
			Model(&Expense{}).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).
			Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var breakdown []CategoryTotal
		if err := conn.
			Model(&Expense{}).
			Select("category, SUM(amount) AS total").
			Group("category").
			Scan(&breakdown).
			Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, TotalResponse{TotalAmount: total, CategoryBreakdown: breakdown})
	})
}

func renderIndex(ctx *gin.Context, conn *gorm.DB, category string) {
	q := conn.Model(&Expense{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var expenses []Expense
	if err := q.Order("date desc").Find(&expenses).Error; err != nil {
		log.Printf("Error retrieving Expenses: %s\n", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total := 0.0
	categoryTotals := map[string]float64{}
	for _, expense := range expenses {
		total += expense.Amount
		categoryTotals[expense.Category] += expense.Amount
	}
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"expenses":         expenses,
		"categories":       validCategories,
		"totalAmount":      total,
		"categoryTotals":   categoryTotals,
		"selectedCategory": category,
	})
}

// Form endpoints mirror the REST operations and bounce back to the page.
func expenseFormHandlers(g *gin.Engine, conn *gorm.DB) {
	g.GET("/", func(ctx *gin.Context) {
		renderIndex(ctx, conn, "")
	})
	g.GET("/expenses/filter", func(ctx *gin.Context) {
		renderIndex(ctx, conn, ctx.Query("category"))
	})
	g.POST("/expenses/add", func(ctx *gin.Context) {
		var body ExpenseRequestBody
		if err := ctx.ShouldBind(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		expense := expenseFromBody(&body)
		if err := conn.Create(&expense).Error; err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.Redirect(http.StatusSeeOther, "/")
	})
	g.POST("/expenses/:id/delete", func(ctx *gin.Context) {
		id, ok := expenseID(ctx)
		if !ok {
			return
		}
		if _, found := findExpense(ctx, conn, id); !found {
			return
		}
		if err := conn.Delete(&Expense{}, id).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.Redirect(http.StatusSeeOther, "/")
	})
}
