package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-d", "ledgers", "-x", "1"},
			allowed: []string{"-d"},
			want:    []string{"-d", "ledgers"},
		},
		{
			name:    "equals form",
			args:    []string{"--dir=ledgers", "-x=1"},
			allowed: []string{"--dir"},
			want:    []string{"--dir=ledgers"},
		},
		{
			name:    "flag without value before another flag",
			args:    []string{"-v", "-d", "ledgers"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-d", "ledgers"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"propledger", "-c", "conf.json", "-d", "ledgers"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"propledger", "-d", "ledgers"}
	require.Equal(t, "", JsonConfigFlags())
}
