package consumer

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirArchive menyimpan file payslip di satu direktori lokal.
type DirArchive struct {
	Dir string
}

// Save menulis ke file sementara lalu rename, jadi pembaca tidak pernah
// melihat file setengah jadi.
func (a DirArchive) Save(name string, body []byte) (string, error) {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create payslip archive dir: %w", err)
	}

	target := filepath.Join(a.Dir, filepath.Base(name))
	tmp, err := os.CreateTemp(a.Dir, ".payslip-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", err
	}
	return target, nil
}
