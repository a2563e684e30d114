package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlint/analysis"
)

func TestParseManifest(t *testing.T) {
	manifest := `
[vlint]
version = "0.1.0"

[rules.explicit-begin]
config = "if_enable:false"

[rules.some-other-rule]
enabled = false
`

	bundle, err := parseManifest([]byte(manifest))
	require.NoError(t, err)
	require.Len(t, bundle, 2)

	assert.Equal(t,
		analysis.BundleItem{Enabled: true, Configuration: "if_enable:false"},
		bundle["explicit-begin"])
	assert.Equal(t,
		analysis.BundleItem{Enabled: false},
		bundle["some-other-rule"])
}

func TestParseManifest_Empty(t *testing.T) {
	bundle, err := parseManifest(nil)
	require.NoError(t, err)
	assert.Empty(t, bundle)
}

func TestParseManifest_Malformed(t *testing.T) {
	_, err := parseManifest([]byte("[rules.explicit-begin\nconfig = 1"))
	assert.Error(t, err)
}
