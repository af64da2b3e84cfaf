package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	tests := []struct {
		in        string
		wantErr   bool
		wantMinor uint64
		release   bool
	}{
		{in: "0.1.0-dev", wantMinor: 1},
		{in: "v1.4.2", wantMinor: 4, release: true},
		{in: "not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			version = tt.in
			assert.Equal(t, tt.in, GetVersion())

			v, err := Parse()
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, IsRelease())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMinor, v.Minor())
			assert.Equal(t, tt.release, IsRelease())
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "release", Describe("1.2.3"))
	assert.Equal(t, "prerelease rc.1", Describe("v2.0.0-rc.1"))
	assert.Equal(t, "development", Describe("dev"))
}
