package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	for _, pw := range []string{"s3cret!", "correct horse battery staple", "ü-ñíçødé"} {
		h, err := HashPassword(pw)
		require.NoError(t, err)
		require.NotEqual(t, pw, h)
		require.True(t, CheckPassword(h, pw))

		for _, altered := range []string{pw + "x", pw[1:], "", "S" + pw[1:]} {
			if altered == pw {
				continue
			}
			require.False(t, CheckPassword(h, altered), "altered %q", altered)
		}
	}
}

func TestCheckPasswordGarbageHash(t *testing.T) {
	require.False(t, CheckPassword("not-a-hash", "pw"))
}

func TestBurnPasswordCheckNeverMatches(t *testing.T) {
	require.False(t, BurnPasswordCheck("unused"))
	require.False(t, BurnPasswordCheck(""))
}
