package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetIDList collects ids from a query parameter. Both repeated parameters
// (?ids=a&ids=b) and comma separated values (?ids=a,b) are accepted; blanks
// and duplicates are dropped.
func GetIDList(c *gin.Context, key string) []string {
	seen := make(map[string]struct{})
	ids := []string{}
	for _, value := range c.QueryArray(key) {
		for _, id := range strings.Split(value, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
