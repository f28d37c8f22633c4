package middleware

import "github.com/gin-gonic/gin"

// ContentVersionHeader carries the deployment marker. Clients compare it
// against the marker they cached under; a mismatch means their held content
// is from a previous deployment and must be refetched.
const ContentVersionHeader = "X-Content-Version"

// ContentVersion stamps content responses with the deployment marker and
// keeps intermediaries from caching them, so a new deployment is visible on
// the next fetch.
func ContentVersion(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set(ContentVersionHeader, version)
		c.Writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Next()
	}
}
