package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameValues(t *testing.T) {
	var a, b bool
	handlers := map[string]func(string) error{
		"a_enable": SetBool(&a),
		"b_enable": SetBool(&b),
	}

	t.Run("empty configuration is a no-op", func(t *testing.T) {
		require.NoError(t, ParseNameValues("", handlers))
	})

	t.Run("sets named values", func(t *testing.T) {
		a, b = false, true
		require.NoError(t, ParseNameValues("a_enable:true;b_enable:false", handlers))
		assert.True(t, a)
		assert.False(t, b)
	})

	t.Run("tolerates spacing and trailing separators", func(t *testing.T) {
		a = false
		require.NoError(t, ParseNameValues(" a_enable : true ; ", handlers))
		assert.True(t, a)
	})

	t.Run("unknown option", func(t *testing.T) {
		err := ParseNameValues("c_enable:true", handlers)
		assert.ErrorIs(t, err, ErrBadConfig)
	})

	t.Run("malformed boolean", func(t *testing.T) {
		err := ParseNameValues("a_enable:maybe", handlers)
		assert.ErrorIs(t, err, ErrBadConfig)
	})

	t.Run("missing separator", func(t *testing.T) {
		err := ParseNameValues("a_enable", handlers)
		assert.ErrorIs(t, err, ErrBadConfig)
	})
}

func TestParseRuleBundle(t *testing.T) {
	t.Run("mixed entries", func(t *testing.T) {
		bundle, err := ParseRuleBundle("explicit-begin, +other, -disabled, configured=if_enable:false;else_enable:true")
		require.NoError(t, err)
		require.Len(t, bundle, 4)

		assert.Equal(t, BundleItem{Enabled: true}, bundle["explicit-begin"])
		assert.Equal(t, BundleItem{Enabled: true}, bundle["other"])
		assert.Equal(t, BundleItem{Enabled: false}, bundle["disabled"])
		assert.Equal(t,
			BundleItem{Enabled: true, Configuration: "if_enable:false;else_enable:true"},
			bundle["configured"])
	})

	t.Run("empty bundle", func(t *testing.T) {
		bundle, err := ParseRuleBundle("")
		require.NoError(t, err)
		assert.Empty(t, bundle)
	})

	t.Run("disabled rule with configuration", func(t *testing.T) {
		_, err := ParseRuleBundle("-rule=if_enable:false")
		assert.ErrorIs(t, err, ErrBadConfig)
	})

	t.Run("empty rule name", func(t *testing.T) {
		_, err := ParseRuleBundle("+")
		assert.ErrorIs(t, err, ErrBadConfig)
	})
}
