package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS middleware from a comma separated list of
// allowed origins. "*" opens it up for local development.
func ConfigCORS(allowedCORSDomains string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	domains := strings.Split(strings.ReplaceAll(allowedCORSDomains, " ", ""), ",")
	for _, domain := range domains {
		if domain == "*" {
			conf.AllowAllOrigins = true
			conf.AllowOrigins = nil

			return cors.New(conf)
		}
	}

	conf.AllowOrigins = domains

	return cors.New(conf)
}
