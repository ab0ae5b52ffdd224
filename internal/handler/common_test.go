package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// fakeAuth 以 X-Test-User header 當作已驗證的 user id
func fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-Test-User")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("caller_id", userID)
		c.Next()
	}
}

func decodeError(body *bytes.Buffer) string {
	var resp struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body.Bytes(), &resp)
	return resp.Error
}
