package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

func seedTasks(store *TaskStore) {
	samples := []CreateTaskRequestBody{
		{Title: "Learn Gin", Description: "Study the Gin framework and build a simple API", Completed: true},
		{Title: "Create Task Manager", Description: "Build a task management application"},
		{Title: "Write Documentation", Description: "Document the project and create README"},
	}
	for _, sample := range samples {
		store.Create(sample)
	}
}

func setupRouter(store *TaskStore) *gin.Engine {
	router := gin.Default()
	taskHandlers(router, store)
	taskFormHandlers(router, store)
	return router
}

func main() {
	store := NewTaskStore()
	seedTasks(store)

	router := setupRouter(store)
	router.LoadHTMLGlob("templates/*")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}
	if err := router.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}
