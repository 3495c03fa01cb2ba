package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func taskID(ctx *gin.Context) (uint, bool) {
	atoi, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || atoi < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return 0, false
	}
	return uint(atoi), true
}

func taskHandlers(g *gin.Engine, store *TaskStore) {
	g.GET("/tasks", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, store.List())
	})
	g.POST("/tasks", func(ctx *gin.Context) {
		var body CreateTaskRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		task := store.Create(body)
		ctx.JSON(http.StatusCreated, task)
	})
	g.PUT("/tasks/:id", func(ctx *gin.Context) {
		id, ok := taskID(ctx)
		if !ok {
			return
		}
		var body UpdateTaskRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		task, found := store.Update(id, body)
		if !found {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		ctx.JSON(http.StatusOK, task)
	})
	g.DELETE("/tasks/:id", func(ctx *gin.Context) {
		id, ok := taskID(ctx)
		if !ok {
			return
		}
		if !store.Delete(id) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		ctx.Status(http.StatusNoContent)
	})
}

// Form endpoints mirror the REST operations and bounce back to the page.
func taskFormHandlers(g *gin.Engine, store *TaskStore) {
	g.GET("/", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "index.html", gin.H{
			"tasks": store.List(),
		})
	})
	g.POST("/tasks/create", func(ctx *gin.Context) {
		var body CreateTaskRequestBody
		if err := ctx.ShouldBind(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		store.Create(body)
		ctx.Redirect(http.StatusSeeOther, "/")
	})
	g.POST("/tasks/:id/toggle", func(ctx *gin.Context) {
		id, ok := taskID(ctx)
		if !ok {
			return
		}
		if _, found := store.Toggle(id); !found {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		ctx.Redirect(http.StatusSeeOther, "/")
	})
	g.POST("/tasks/:id/delete", func(ctx *gin.Context) {
		id, ok := taskID(ctx)
		if !ok {
			return
		}
		if !store.Delete(id) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		ctx.Redirect(http.StatusSeeOther, "/")
	})
}
