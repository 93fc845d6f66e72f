package syncgate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppulse/steppulse/internal/syncgate"
)

// kvStub is an in-memory stand-in for the redis client.
type kvStub struct {
	values map[string]string
	getErr error
	setErr error
}

func newKVStub() *kvStub {
	return &kvStub{values: map[string]string{}}
}

func (kv *kvStub) Get(ctx context.Context, key string) *redis.StringCmd {
	if kv.getErr != nil {
		cmd := redis.NewStringCmd(ctx)
		cmd.SetErr(kv.getErr)
		return cmd
	}
	val, ok := kv.values[key]
	if !ok {
		cmd := redis.NewStringCmd(ctx)
		cmd.SetErr(redis.Nil)
		return cmd
	}
	return redis.NewStringResult(val, nil)
}

func (kv *kvStub) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if kv.setErr != nil {
		cmd := redis.NewStatusCmd(ctx)
		cmd.SetErr(kv.setErr)
		return cmd
	}
	kv.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func TestShouldAutoSync(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc     string
		LastSync string
		Expected bool
	}{
		{
			Desc:     "no previous sync allows",
			LastSync: "",
			Expected: true,
		},
		{
			Desc:     "recent sync throttles",
			LastSync: now.Add(-30 * time.Minute).Format(time.RFC3339),
			Expected: false,
		},
		{
			Desc:     "exactly threshold old still throttles",
			LastSync: now.Add(-time.Hour).Format(time.RFC3339),
			Expected: false,
		},
		{
			Desc:     "older than threshold allows",
			LastSync: now.Add(-time.Hour - time.Second).Format(time.RFC3339),
			Expected: true,
		},
		{
			Desc:     "garbled timestamp allows",
			LastSync: "not-a-timestamp",
			Expected: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			kv := newKVStub()
			if tc.LastSync != "" {
				kv.values["last_step_sync:K123456"] = tc.LastSync
			}
			gate := syncgate.NewWithKV(kv, func() time.Time { return now })
			should, err := gate.ShouldAutoSync(context.Background(), "K123456")
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, should)
		})
	}
}

func TestShouldAutoSyncStoreError(t *testing.T) {
	t.Parallel()
	kv := newKVStub()
	kv.getErr = errors.New("connection refused")
	gate := syncgate.NewWithKV(kv, time.Now)

	should, err := gate.ShouldAutoSync(context.Background(), "K123456")
	assert.False(t, should)
	assert.EqualError(t, err, "reading last sync time error: connection refused")
}

func TestMarkSynced(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	kv := newKVStub()
	gate := syncgate.NewWithKV(kv, func() time.Time { return now })

	err := gate.MarkSynced(context.Background(), "K123456")
	require.NoError(t, err)
	assert.Equal(t, now.Format(time.RFC3339), kv.values["last_step_sync:K123456"])

	// A sync right after marking is throttled
	should, err := gate.ShouldAutoSync(context.Background(), "K123456")
	require.NoError(t, err)
	assert.False(t, should)
}

func TestMarkSyncedStoreError(t *testing.T) {
	t.Parallel()
	kv := newKVStub()
	kv.setErr = errors.New("connection refused")
	gate := syncgate.NewWithKV(kv, time.Now)

	err := gate.MarkSynced(context.Background(), "K123456")
	assert.EqualError(t, err, "recording last sync time error: connection refused")
}
