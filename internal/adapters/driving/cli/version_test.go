package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	original := version
	defer func() { version = original }()

	tests := []struct {
		name    string
		version string
		args    []string
		want    []string
		exact   string
	}{
		{
			name:    "full",
			version: "1.4.0",
			args:    []string{"version"},
			want:    []string{"kokua version 1.4.0", runtime.Version(), runtime.GOOS + "/" + runtime.GOARCH},
		},
		{
			name:    "dev build",
			version: "dev",
			args:    []string{"version"},
			want:    []string{"kokua version dev"},
		},
		{
			name:    "short",
			version: "1.4.0",
			args:    []string{"version", "--short"},
			exact:   "1.4.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version = tt.version

			out, err := execute(tt.args...)

			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			if tt.exact != "" {
				assert.Equal(t, tt.exact, out)
			}
		})
	}
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	_, err := execute("version", "extra")
	assert.Error(t, err)
}
