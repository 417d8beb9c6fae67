package keyterms_test

import (
	"testing"

	"github.com/fwojciec/keyterms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		req, err := keyterms.ParseRequest("", "10")

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Equal(t, keyterms.EINVALID, keyterms.ErrorCode(err))
	})

	t.Run("rejects whitespace-only text", func(t *testing.T) {
		t.Parallel()

		_, err := keyterms.ParseRequest("   \n\t ", "10")

		assert.Equal(t, keyterms.EINVALID, keyterms.ErrorCode(err))
	})

	t.Run("keeps text as typed", func(t *testing.T) {
		t.Parallel()

		req, err := keyterms.ParseRequest("  machine learning  ", "5")

		require.NoError(t, err)
		assert.Equal(t, "  machine learning  ", req.Text)
		assert.Equal(t, 5, req.TopN)
	})

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"defaults non-numeric top-N", "abc", keyterms.DefaultTopN},
		{"defaults empty top-N", "", keyterms.DefaultTopN},
		{"defaults zero top-N", "0", keyterms.DefaultTopN},
		{"defaults negative top-N", "-3", keyterms.DefaultTopN},
		{"parses leading integer", "12abc", 12},
		{"truncates decimals", "7.5", 7},
		{"trims whitespace", " 20 ", 20},
		{"passes values above the input maximum through", "80", 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := keyterms.ParseRequest("some text", tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, req.TopN)
		})
	}
}
