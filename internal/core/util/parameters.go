package util

import "github.com/gin-gonic/gin"

// BindParams decodes the JSON body into the request type.
func BindParams[T any](c *gin.Context) (T, error) {
	var params T

	if err := c.ShouldBindJSON(&params); err != nil {
		return params, err
	}

	return params, nil
}
