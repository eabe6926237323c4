package patch

import (
	"os"
	"path/filepath"
)

// Container is where game resources are read from and patches written to.
type Container interface {
	Load(path string) ([]byte, error)
	Write(path string, data []byte) error
}

// Codec packs and unpacks resources stored compressed in a container.
type Codec interface {
	Decompress(data []byte) ([]byte, error)
	Compress(data []byte) ([]byte, error)
}

// DirContainer is a container backed by a plain directory.
type DirContainer struct {
	Root string
}

func (d DirContainer) Load(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.Root, filepath.FromSlash(path)))
}

func (d DirContainer) Write(path string, data []byte) error {
	full := filepath.Join(d.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

// Plain stores resources as they are.
type Plain struct{}

func (Plain) Decompress(data []byte) ([]byte, error) { return data, nil }
func (Plain) Compress(data []byte) ([]byte, error) { return data, nil }
