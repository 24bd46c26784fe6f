package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

func TestGetCommand(t *testing.T) {
	path := sampleFile(t, "level.dat", nil, nbtfile.CompressionGzip)

	tests := []struct {
		name        string
		path        string
		showType    bool
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{name: "int", path: "int", wantContain: []string{"42\n"}},
		{name: "long with type", path: "long", showType: true, wantContain: []string{"long 9223372036854775807"}},
		{name: "string", path: "text", wantContain: []string{"a¢€ \U0001F600"}},
		{name: "list element field", path: "Sections[2].Y", wantContain: []string{"2\n"}},
		{name: "byte array as snbt", path: "bytes", wantContain: []string{"[B;0b,1b,2b,-1b]"}},
		{name: "int array element", path: "ints[0]", wantContain: []string{"-2147483648"}},
		{name: "compound as snbt", path: "Sections[1]", wantContain: []string{"{Y:1b,Blocks:[B;1b,2b]}"}},
		{name: "json", path: "int", wantJSON: true, wantContain: []string{`"type": "int"`, `"value": 42`}},
		{name: "missing key", path: "nope", wantErr: true},
		{name: "index out of range", path: "Sections[3]", wantErr: true},
		{name: "bad path", path: "Sections[", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			getShowType = tt.showType

			out, err := captureOutput(t, func() error {
				return runGet([]string{path, tt.path})
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantJSON {
				assertJSON(t, out)
			}
			assertContains(t, out, tt.wantContain)
		})
	}
}

func TestGetMissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runGet([]string{"/nonexistent/level.dat", "int"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
