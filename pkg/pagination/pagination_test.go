package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := Params{Page: 1, PageSize: 20}.CalculateOffsetLimit()
	assert.Equal(t, 0, offset)
	assert.Equal(t, 20, limit)

	offset, limit = Params{Page: 3, PageSize: 10}.CalculateOffsetLimit()
	assert.Equal(t, 20, offset)
	assert.Equal(t, 10, limit)

	offset, limit = Params{}.CalculateOffsetLimit()
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, limit)
}

func TestBuildMeta(t *testing.T) {
	meta := Params{Page: 2, PageSize: 10}.BuildMeta(25)
	assert.Equal(t, Meta{Page: 2, PageSize: 10, TotalItems: 25, TotalPages: 3}, meta)

	meta = Params{Page: 1, PageSize: 10}.BuildMeta(0)
	assert.Equal(t, 0, meta.TotalPages)
}
