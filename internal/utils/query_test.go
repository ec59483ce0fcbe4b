package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetIDList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"missing", "", []string{}},
		{"single", "ids=a", []string{"a"}},
		{"comma separated", "ids=a,b,,c", []string{"a", "b", "c"}},
		{"repeated", "ids=a&ids=b&ids=a", []string{"a", "b"}},
		{"mixed", "ids=a,%20b&ids=c", []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)

			assert.Equal(t, tc.want, GetIDList(c, "ids"))
		})
	}
}
