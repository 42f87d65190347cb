// ==============================================================================================
// FILE: internal/cache/cache.go
// ==============================================================================================
// PACKAGE: cache
// PURPOSE: The intermediate token cache, per spec.md §4.3/§6: for a source
//          file with hash H, Load reads intermediate/<P>.prt and accepts it
//          iff the stored hash equals H; Store writes {hash, tokens} back.
//          Serialization uses encoding/gob, the standard library's
//          self-describing binary codec — see DESIGN.md for why this one
//          concern stays on the standard library rather than a third-party
//          codec.
// ==============================================================================================

package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"io"
	"os"
	"path/filepath"

	"eloquence/token"
)

// Extension is the on-disk suffix for a cached token stream.
const Extension = ".prt"

// Entry is the payload persisted per source file: its content hash and the
// token stream produced by lexing it.
type Entry struct {
	Hash   [32]byte
	Tokens []token.Token
}

// HashFile streams a file's contents through SHA-256 without reading the
// whole file into memory first.
func HashFile(path string) ([32]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return [32]byte{}, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// HashBytes hashes content already resident in memory (the in-memory
// variant used once a source file has been read for lexing).
func HashBytes(content []byte) [32]byte {
	return sha256.Sum256(content)
}

// IntermediatePath maps a source-relative path (e.g. "util/helpers.prs")
// under sourceDir to its cache location under intermediateDir, mirroring
// the source tree's directory structure with the .prt extension appended.
func IntermediatePath(intermediateDir, relPath string) string {
	return filepath.Join(intermediateDir, relPath+Extension)
}

// Load reads and decodes a cache entry at path, returning ok=false (never an
// error) on any I/O or decode failure — per spec.md, any such failure is
// treated as a plain cache miss, not a fatal condition.
func Load(path string) (Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, false
	}
	var entry Entry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

// Valid reports whether a loaded entry's stored hash matches the source's
// current hash.
func Valid(entry Entry, hash [32]byte) bool {
	return entry.Hash == hash
}

// Store serializes {hash, tokens} to path, creating parent directories as
// needed.
func Store(path string, hash [32]byte, tokens []token.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	entry := Entry{Hash: hash, Tokens: tokens}
	if err := gob.NewEncoder(&buf).Encode(entry); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Clean removes the entire intermediate directory tree, the `clean` CLI
// operation's implementation.
func Clean(intermediateDir string) error {
	return os.RemoveAll(intermediateDir)
}
