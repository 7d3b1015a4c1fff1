package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-db", "shop.db", "-t", "24h"},
			owned: []string{"-db"},
			want:  []string{"-db", "shop.db"},
		},
		{
			name:  "equals form",
			args:  []string{"-db=alt.db", "-t", "24h"},
			owned: []string{"-db"},
			want:  []string{"-db=alt.db"},
		},
		{
			name:  "order preserved",
			args:  []string{"-t=1h", "-x", "1", "-db", "a.db"},
			owned: []string{"-db", "-t"},
			want:  []string{"-t=1h", "-db", "a.db"},
		},
		{
			name:  "unknown flags dropped",
			args:  []string{"-x", "1", "--y=2", "positional"},
			owned: []string{"-db"},
			want:  []string{},
		},
		{
			name:  "trailing flag without value",
			args:  []string{"-db"},
			owned: []string{"-db"},
			want:  []string{"-db"},
		},
		{
			name:  "next flag is not a value",
			args:  []string{"-db", "-t"},
			owned: []string{"-db"},
			want:  []string{"-db"},
		},
		{
			name:  "equals value that looks like a flag",
			args:  []string{"-db=--odd.db"},
			owned: []string{"-db"},
			want:  []string{"-db=--odd.db"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.owned))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFileFlag([]string{"-c", "a.json", "-db", "x"}))
	assert.Equal(t, "b.json", ConfigFileFlag([]string{"-config=b.json"}))
	assert.Equal(t, "c.json", ConfigFileFlag([]string{"--config", "c.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-db", "x"}))
}
