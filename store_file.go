package menucache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// fileRecordMagic prefixes every record: 4 magic bytes then a big-endian
// expiry in unix nanoseconds, then the raw value.
var fileRecordMagic = []byte("MDC1")

type fileStore struct {
	dir        string
	defaultTTL time.Duration
}

func newFileStore(dir string, defaultTTL time.Duration) Store {
	if dir == "" {
		dir = defaultFileDir()
	}
	if defaultTTL <= 0 {
		defaultTTL = defaultStoreTTL
	}
	_ = os.MkdirAll(dir, 0o755)
	return &fileStore{
		dir:        dir,
		defaultTTL: defaultTTL,
	}
}

func (s *fileStore) Driver() Driver {
	return DriverFile
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := s.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	expiresAt, value, err := decodeFileRecord(data)
	if err != nil {
		_ = os.Remove(path)
		return nil, false, err
	}

	if expiresAt > 0 && time.Now().UnixNano() > expiresAt {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return value, true, nil
}

func (s *fileStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	expiresAt := time.Now().Add(ttl).UnixNano()

	tmp, err := os.CreateTemp(s.dir, "menu-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	var header [12]byte
	copy(header[:4], fileRecordMagic)
	binary.BigEndian.PutUint64(header[4:], uint64(expiresAt))

	if _, err := tmp.Write(header[:]); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path(key))
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *fileStore) DeleteMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *fileStore) Flush(_ context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		_ = os.Remove(filepath.Join(s.dir, entry.Name()))
	}
	return nil
}

func (s *fileStore) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	name := hex.EncodeToString(sum[:])
	return filepath.Join(s.dir, name+".slot")
}

func decodeFileRecord(data []byte) (int64, []byte, error) {
	if len(data) < 12 || !bytes.Equal(data[:4], fileRecordMagic) {
		return 0, nil, errors.New("malformed cache record")
	}
	expiresAt := int64(binary.BigEndian.Uint64(data[4:12]))
	return expiresAt, data[12:], nil
}
