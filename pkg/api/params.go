package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// enum is satisfied by every closed string type in pkg/models.
type enum interface {
	~string
	IsValid() bool
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

func queryInt(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be an integer", key, raw)
	}
	return &v, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be true or false", key, raw)
	}
	return &v, nil
}

func queryEnum[T enum](c *gin.Context, key string) (*T, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v := T(raw)
	if !v.IsValid() {
		return nil, fmt.Errorf("invalid %s %q", key, raw)
	}
	return &v, nil
}

func listParams(c *gin.Context) (models.ListParams, error) {
	var p models.ListParams
	page, err := queryInt(c, "page")
	if err != nil {
		return p, err
	}
	size, err := queryInt(c, "page_size")
	if err != nil {
		return p, err
	}
	if page != nil {
		p.Page = *page
	}
	if size != nil {
		p.PageSize = *size
	}
	return p, nil
}

// collect returns the first non-nil error.
func collect(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
