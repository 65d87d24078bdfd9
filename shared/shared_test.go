package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgate/shared"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 100, limit: 10, want: 10},
		{name: "with remainder", total: 101, limit: 10, want: 11},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 50, limit: 0, want: 1},
		{name: "single item", total: 1, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "catalog:rooms:42", shared.BuildCacheKey("catalog", "rooms", "42"))
	assert.Equal(t, "single", shared.BuildCacheKey("single"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	type query struct {
		Page  int
		Limit int
	}

	first := shared.BuildCacheKeyWithQuery("catalog:rooms", query{Page: 1, Limit: 10})
	same := shared.BuildCacheKeyWithQuery("catalog:rooms", query{Page: 1, Limit: 10})
	other := shared.BuildCacheKeyWithQuery("catalog:rooms", query{Page: 2, Limit: 10})

	assert.Equal(t, first, same)
	assert.NotEqual(t, first, other)
	assert.Contains(t, first, "catalog:rooms:")
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{name: "true", value: "true", want: boolPtr(true)},
		{name: "false", value: "false", want: boolPtr(false)},
		{name: "empty", value: "", want: nil},
		{name: "garbage", value: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
