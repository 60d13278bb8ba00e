package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character sets for generated member passwords. Similar-looking glyphs
// (0, O, 1, l, I) are excluded so passwords survive being read out loud.
const (
	genUppercase = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	genLowercase = "abcdefghijkmnopqrstuvwxyz"
	genNumbers   = "23456789"
)

const (
	genPasswordLength = 10
	genMinUppercase   = 2
	genMinLowercase   = 2
	genMinNumbers     = 2
)

// GenerateMemberPassword creates a random initial password for a new member:
// ten characters with at least two uppercase letters, two lowercase letters
// and two digits, shuffled so the guaranteed characters are not positional.
func GenerateMemberPassword() (string, error) {
	all := genUppercase + genLowercase + genNumbers

	chars := make([]byte, 0, genPasswordLength)
	for i := 0; i < genMinUppercase; i++ {
		c, err := randomChar(genUppercase)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for i := 0; i < genMinLowercase; i++ {
		c, err := randomChar(genLowercase)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for i := 0; i < genMinNumbers; i++ {
		c, err := randomChar(genNumbers)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < genPasswordLength {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates with crypto/rand indices.
	for i := len(chars) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("failed to shuffle password characters: %w", err)
		}
		j := n.Int64()
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("failed to pick random character: %w", err)
	}
	return set[n.Int64()], nil
}
