package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSets(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	testCases := []struct {
		name      string
		selection string
		want      []string
		wantErr   bool
	}{
		{
			name:      "block name",
			selection: "urzas",
			want:      []string{"usg", "ulg", "uds"},
		},
		{
			name:      "block name case insensitive",
			selection: " Invasion ",
			want:      []string{"inv", "pls", "apc"},
		},
		{
			name:      "all blocks in name order",
			selection: "all",
			want:      []string{"inv", "pls", "apc", "mmq", "nem", "pcy", "usg", "ulg", "uds"},
		},
		{
			name:      "raw codes",
			selection: "usg,mmq",
			want:      []string{"usg", "mmq"},
		},
		{
			name:      "raw codes with spaces",
			selection: "usg , mmq,",
			want:      []string{"usg", "mmq"},
		},
		{
			name:      "empty",
			selection: "",
			wantErr:   true,
		},
		{
			name:      "code too short",
			selection: "us",
			wantErr:   true,
		},
		{
			name:      "code too long",
			selection: "usg,notasetcode",
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			codes, err := resolveSets(cfg, tc.selection)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, codes)
		})
	}
}

func TestResolveSetsDoesNotAliasConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	codes, err := resolveSets(cfg, "urzas")
	require.NoError(t, err)
	codes[0] = "zzz"

	assert.Equal(t, "usg", cfg.Blocks["urzas"][0])
}
