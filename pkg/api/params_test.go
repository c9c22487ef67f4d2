package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

func testContext(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestQueryParams(t *testing.T) {
	t.Run("absent values are nil", func(t *testing.T) {
		c := testContext("/")
		n, err := queryInt(c, "tier")
		require.NoError(t, err)
		assert.Nil(t, n)
		b, err := queryBool(c, "success")
		require.NoError(t, err)
		assert.Nil(t, b)
		cat, err := queryEnum[models.Category](c, "category")
		require.NoError(t, err)
		assert.Nil(t, cat)
	})

	t.Run("valid values parse", func(t *testing.T) {
		c := testContext("/?tier=3&success=false&category=security")
		n, err := queryInt(c, "tier")
		require.NoError(t, err)
		assert.Equal(t, 3, *n)
		b, err := queryBool(c, "success")
		require.NoError(t, err)
		assert.False(t, *b)
		cat, err := queryEnum[models.Category](c, "category")
		require.NoError(t, err)
		assert.Equal(t, models.CategorySecurity, *cat)
	})

	t.Run("malformed values error", func(t *testing.T) {
		c := testContext("/?tier=high&success=maybe&category=astrology")
		_, err := queryInt(c, "tier")
		assert.ErrorContains(t, err, `invalid tier "high"`)
		_, err = queryBool(c, "success")
		assert.ErrorContains(t, err, `invalid success "maybe"`)
		_, err = queryEnum[models.Category](c, "category")
		assert.ErrorContains(t, err, `invalid category "astrology"`)
	})
}

func TestListParams(t *testing.T) {
	lp, err := listParams(testContext("/?page=2&page_size=10"))
	require.NoError(t, err)
	assert.Equal(t, models.ListParams{Page: 2, PageSize: 10}, lp)

	_, err = listParams(testContext("/?page=two"))
	assert.Error(t, err)
}

func TestPathID(t *testing.T) {
	for _, tt := range []struct {
		raw   string
		valid bool
	}{{"12", true}, {"0", false}, {"-1", false}, {"abc", false}} {
		c := testContext("/")
		c.Params = gin.Params{{Key: "id", Value: tt.raw}}
		id, err := pathID(c)
		if tt.valid {
			require.NoError(t, err)
			assert.Equal(t, 12, id)
		} else {
			assert.Error(t, err, tt.raw)
		}
	}
}
