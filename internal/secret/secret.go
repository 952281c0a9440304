// Package secret manages the generated application secret stored under the
// configured private data path. Downstream services derive session salts from
// it; the configuration wizard itself never reads it.
package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the fixed name of the secret file inside the private dir.
const FileName = "appsecret"

const tokenLength = 64

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a new random alphanumeric token.
func Generate() (string, error) {
	var b strings.Builder
	b.Grow(tokenLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < tokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate secret: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Ensure returns the secret stored under privateDir, generating and writing a
// new one when none exists.
func Ensure(privateDir string) (string, error) {
	path := filepath.Join(privateDir, FileName)

	data, err := os.ReadFile(path)
	if err == nil {
		token := strings.TrimSpace(string(data))
		if token != "" {
			return token, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read secret: %w", err)
	}

	token, err := Generate()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(privateDir, 0o755); err != nil {
		return "", fmt.Errorf("create private directory %q: %w", privateDir, err)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return "", fmt.Errorf("write secret: %w", err)
	}
	return token, nil
}

// Salt derives a stable hex-encoded SHA-256 salt from the token.
func Salt(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
