package routes

import (
	"autointake/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the static intake form and the agent endpoint.
func RegisterRoutes(r *gin.Engine, intake *handlers.IntakeHandler) {
	// The intake form the agent drives.
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/styles.css", "./public/styles.css")
	r.StaticFile("/script.js", "./public/script.js")

	r.POST("/run", intake.RunHandler)
}
