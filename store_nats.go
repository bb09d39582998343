package menucache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

const natsEnvelopeMarker = "menu-v1"

// NATSKeyValue captures the subset of nats.KeyValue used by the store.
type NATSKeyValue interface {
	Get(key string) (nats.KeyValueEntry, error)
	Put(key string, value []byte) (uint64, error)
	Delete(key string, opts ...nats.DeleteOpt) error
	Purge(key string, opts ...nats.DeleteOpt) error
	ListKeys(opts ...nats.WatchOpt) (nats.KeyLister, error)
}

type natsStore struct {
	kv         NATSKeyValue
	defaultTTL time.Duration
	prefix     string
	bucketTTL  bool
}

type natsEnvelope struct {
	Marker    string `json:"m"`
	Value     []byte `json:"v"`
	ExpiresAt int64  `json:"ea"`
}

func newNATSStore(kv NATSKeyValue, defaultTTL time.Duration, prefix string, bucketTTL bool) Store {
	if defaultTTL <= 0 {
		defaultTTL = defaultStoreTTL
	}
	if prefix == "" {
		prefix = defaultStorePrefix
	}
	return &natsStore{
		kv:         kv,
		defaultTTL: defaultTTL,
		prefix:     prefix,
		bucketTTL:  bucketTTL,
	}
}

func (s *natsStore) Driver() Driver { return DriverNATS }

func (s *natsStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if s.kv == nil {
		return nil, false, errors.New("nats key-value unavailable")
	}
	storeKey := s.storeKey(key)
	entry, err := s.kv.Get(storeKey)
	if isNATSMiss(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if entry.Operation() == nats.KeyValueDelete || entry.Operation() == nats.KeyValuePurge {
		return nil, false, nil
	}
	if s.bucketTTL {
		return cloneBytes(entry.Value()), true, nil
	}
	envelope, wrapped, err := decodeNATSEnvelope(entry.Value())
	if err != nil {
		return nil, false, err
	}
	if wrapped {
		if envelope.ExpiresAt > 0 && time.Now().UnixMilli() > envelope.ExpiresAt {
			_ = s.kv.Purge(storeKey)
			return nil, false, nil
		}
		return cloneBytes(envelope.Value), true, nil
	}
	return cloneBytes(entry.Value()), true, nil
}

func (s *natsStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.kv == nil {
		return errors.New("nats key-value unavailable")
	}
	body := cloneBytes(value)
	if !s.bucketTTL {
		var err error
		body, err = s.encodeNATSEnvelope(value, ttl)
		if err != nil {
			return err
		}
	}
	_, err := s.kv.Put(s.storeKey(key), body)
	return err
}

func (s *natsStore) Delete(_ context.Context, key string) error {
	if s.kv == nil {
		return errors.New("nats key-value unavailable")
	}
	err := s.kv.Delete(s.storeKey(key))
	if isNATSMiss(err) {
		return nil
	}
	return err
}

func (s *natsStore) DeleteMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *natsStore) Flush(_ context.Context) error {
	if s.kv == nil {
		return errors.New("nats key-value unavailable")
	}
	lister, err := s.kv.ListKeys(nats.IgnoreDeletes())
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}
		return err
	}
	defer func() { _ = lister.Stop() }()

	scopePrefix := s.scopePrefix()
	for key := range lister.Keys() {
		if !strings.HasPrefix(key, scopePrefix) {
			continue
		}
		if err := s.kv.Purge(key); err != nil && !isNATSMiss(err) {
			return err
		}
	}
	return nil
}

func (s *natsStore) storeKey(key string) string {
	return s.scopePrefix() + encodeNATSKeyPart(key)
}

func (s *natsStore) scopePrefix() string {
	return "p." + encodeNATSKeyPart(s.prefix) + ".k."
}

func (s *natsStore) encodeNATSEnvelope(value []byte, ttl time.Duration) ([]byte, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	envelope := natsEnvelope{
		Marker:    natsEnvelopeMarker,
		Value:     cloneBytes(value),
		ExpiresAt: time.Now().Add(ttl).UnixMilli(),
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal nats envelope: %w", err)
	}
	return body, nil
}

func decodeNATSEnvelope(body []byte) (natsEnvelope, bool, error) {
	var envelope natsEnvelope
	if len(body) == 0 || body[0] != '{' {
		return envelope, false, nil
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return natsEnvelope{}, false, fmt.Errorf("decode nats envelope: %w", err)
	}
	if envelope.Marker != natsEnvelopeMarker {
		return natsEnvelope{}, false, nil
	}
	return envelope, true, nil
}

func isNATSMiss(err error) bool {
	return errors.Is(err, nats.ErrKeyNotFound) || errors.Is(err, nats.ErrKeyDeleted)
}

func encodeNATSKeyPart(part string) string {
	if part == "" {
		return "_"
	}
	return base64.RawURLEncoding.EncodeToString([]byte(part))
}
