package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pragyabajoria/polynomial/utils/sampling"
)

func Test_Source(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("Deterministic", func(t *testing.T) {
		sa, err := sampling.NewSource(key)
		require.NoError(t, err)
		sb, err := sampling.NewSource(key)
		require.NoError(t, err)

		for i := 0; i < 128; i++ {
			require.Equal(t, sa.Uint64(), sb.Uint64())
		}
	})

	t.Run("Reset", func(t *testing.T) {
		s, err := sampling.NewSource(key)
		require.NoError(t, err)

		first := make([]uint64, 64)
		for i := range first {
			first[i] = s.Uint64()
		}

		s.Reset()

		for i := range first {
			require.Equal(t, first[i], s.Uint64())
		}
	})

	t.Run("Keyed", func(t *testing.T) {
		sa, err := sampling.NewSource(key)
		require.NoError(t, err)
		sb, err := sampling.NewSource(nil)
		require.NoError(t, err)

		// 256 bits of agreement between differently keyed streams is
		// vanishingly unlikely.
		same := true
		for i := 0; i < 4; i++ {
			same = same && (sa.Uint64() == sb.Uint64())
		}
		require.False(t, same)
	})

	t.Run("Bounds", func(t *testing.T) {
		s, err := sampling.NewSource(key)
		require.NoError(t, err)

		for i := 0; i < 1024; i++ {
			v := s.Intn(17)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 17)

			w := s.Int(10)
			require.GreaterOrEqual(t, w, -10)
			require.LessOrEqual(t, w, 10)
		}
	})
}
