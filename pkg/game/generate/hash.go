package generate

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"

	"ravio/pkg/game/settings"
)

// Version is stamped into every seed hash and spoiler.
const Version = "0.4.0"

const hashLen = 5

// Symbols a seed hash is spelled with, one per decimal digit.
var hashSymbols = [10]string{"(A)", "(B)", "(X)", "(Y)", "(L)", "(R)", "(Ravio)", "(Bow)", "(Bomb)", "(Fire)"}

// Hash is a short, human-comparable fingerprint of a seed and its settings.
// Two players with the same hash are playing the same game.
func Hash(seed uint32, s *settings.Settings) (string, error) {
	canon, err := s.Canonical()
	if err != nil {
		return "", err
	}

	d := xxhash.New()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], seed)
	_, _ = d.Write(buf[:])
	_, _ = d.Write(canon)
	_, _ = d.WriteString(Version)

	n := d.Sum64() % 100_000
	digits := make([]string, hashLen)
	for i := hashLen - 1; i >= 0; i-- {
		digits[i] = hashSymbols[n%10]
		n /= 10
	}
	return strings.Join(digits, " "), nil
}
