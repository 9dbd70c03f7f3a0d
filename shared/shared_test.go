package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tide/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "valid id", raw: "42", want: 42},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.ParseID(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
