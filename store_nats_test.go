package menucache

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
)

type stubNATSEntry struct {
	bucket string
	key    string
	value  []byte
	rev    uint64
}

func (e *stubNATSEntry) Bucket() string             { return e.bucket }
func (e *stubNATSEntry) Key() string                { return e.key }
func (e *stubNATSEntry) Value() []byte              { return e.value }
func (e *stubNATSEntry) Revision() uint64           { return e.rev }
func (e *stubNATSEntry) Created() time.Time         { return time.Time{} }
func (e *stubNATSEntry) Delta() uint64              { return 0 }
func (e *stubNATSEntry) Operation() nats.KeyValueOp { return nats.KeyValuePut }

type stubNATSKeyLister struct {
	keys chan string
}

func (l *stubNATSKeyLister) Keys() <-chan string { return l.keys }
func (l *stubNATSKeyLister) Stop() error         { return nil }

type stubNATSKeyValue struct {
	bucket string
	data   map[string][]byte
	rev    uint64
}

func newStubNATSKeyValue(bucket string) *stubNATSKeyValue {
	return &stubNATSKeyValue{bucket: bucket, data: make(map[string][]byte)}
}

func (kv *stubNATSKeyValue) Get(key string) (nats.KeyValueEntry, error) {
	value, ok := kv.data[key]
	if !ok {
		return nil, nats.ErrKeyNotFound
	}
	return &stubNATSEntry{bucket: kv.bucket, key: key, value: value, rev: kv.rev}, nil
}

func (kv *stubNATSKeyValue) Put(key string, value []byte) (uint64, error) {
	kv.rev++
	kv.data[key] = append([]byte(nil), value...)
	return kv.rev, nil
}

func (kv *stubNATSKeyValue) Delete(key string, _ ...nats.DeleteOpt) error {
	if _, ok := kv.data[key]; !ok {
		return nats.ErrKeyNotFound
	}
	delete(kv.data, key)
	return nil
}

func (kv *stubNATSKeyValue) Purge(key string, _ ...nats.DeleteOpt) error {
	delete(kv.data, key)
	return nil
}

func (kv *stubNATSKeyValue) ListKeys(_ ...nats.WatchOpt) (nats.KeyLister, error) {
	if len(kv.data) == 0 {
		return nil, nats.ErrNoKeysFound
	}
	ch := make(chan string, len(kv.data))
	for key := range kv.data {
		ch <- key
	}
	close(ch)
	return &stubNATSKeyLister{keys: ch}, nil
}

func TestNATSStoreNilKeyValueErrors(t *testing.T) {
	store := newNATSStore(nil, 0, "", false)
	ctx := context.Background()

	if _, _, err := store.Get(ctx, "k"); err == nil {
		t.Fatalf("expected get error when nats key-value is nil")
	}
	if err := store.Set(ctx, "k", []byte("v"), 0); err == nil {
		t.Fatalf("expected set error when nats key-value is nil")
	}
	if err := store.Delete(ctx, "k"); err == nil {
		t.Fatalf("expected delete error when nats key-value is nil")
	}
	if err := store.Flush(ctx); err == nil {
		t.Fatalf("expected flush error when nats key-value is nil")
	}
}

func TestNATSStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	kv := newStubNATSKeyValue("bucket")
	store := newNATSStore(kv, time.Minute, "pfx", false)

	if err := store.Set(ctx, "alpha", []byte("one"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	body, ok, err := store.Get(ctx, "alpha")
	if err != nil || !ok || string(body) != "one" {
		t.Fatalf("unexpected get result: ok=%v err=%v body=%s", ok, err, string(body))
	}

	if err := store.Delete(ctx, "alpha"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.Delete(ctx, "alpha"); err != nil {
		t.Fatalf("delete of missing key should be a no-op: %v", err)
	}
	_, ok, err = store.Get(ctx, "alpha")
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if ok {
		t.Fatalf("expected missing after delete")
	}
}

func TestNATSStoreEnvelopeExpiry(t *testing.T) {
	ctx := context.Background()
	kv := newStubNATSKeyValue("bucket")
	store := newNATSStore(kv, time.Minute, "pfx", false)

	if err := store.Set(ctx, "ttl", []byte("v"), 30*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(60 * time.Millisecond)
	_, ok, err := store.Get(ctx, "ttl")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("expected envelope ttl to expire")
	}
	if len(kv.data) != 0 {
		t.Fatalf("expected expired key to be purged")
	}
}

func TestNATSStoreBucketTTLSkipsEnvelope(t *testing.T) {
	ctx := context.Background()
	kv := newStubNATSKeyValue("bucket")
	store := newNATSStore(kv, time.Minute, "pfx", true)

	if err := store.Set(ctx, "raw", []byte("plain"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	for _, stored := range kv.data {
		if string(stored) != "plain" {
			t.Fatalf("expected raw body without envelope, got %s", string(stored))
		}
	}
	body, ok, err := store.Get(ctx, "raw")
	if err != nil || !ok || string(body) != "plain" {
		t.Fatalf("unexpected get result: ok=%v err=%v body=%s", ok, err, string(body))
	}
}

func TestNATSStoreFlushScopedToPrefix(t *testing.T) {
	ctx := context.Background()
	kv := newStubNATSKeyValue("bucket")
	store := newNATSStore(kv, time.Minute, "pfx", false)

	kv.data["foreign"] = []byte("keep")
	if err := store.Set(ctx, "mine", []byte("x"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if _, ok := kv.data["foreign"]; !ok {
		t.Fatalf("expected flush to leave foreign keys alone")
	}
	if len(kv.data) != 1 {
		t.Fatalf("expected only the foreign key to remain, got %d keys", len(kv.data))
	}

	// empty bucket is fine
	kv2 := newStubNATSKeyValue("bucket")
	empty := newNATSStore(kv2, time.Minute, "pfx", false)
	if err := empty.Flush(ctx); err != nil {
		t.Fatalf("flush of empty bucket failed: %v", err)
	}
}
