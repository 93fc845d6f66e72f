// Package syncgate throttles automatic step syncs: an auto-sync is allowed
// only when more than a threshold has passed since the last recorded one.
// Manual syncs never consult the gate.
package syncgate

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/steppulse/steppulse/pkg/cleanup"
)

// AutoSyncThreshold mirrors the app's foreground auto-sync gate of one hour.
const AutoSyncThreshold = time.Hour

const keyPrefix = "last_step_sync:"

type GateI interface {
	// Reports whether an auto-sync should run for the employee
	ShouldAutoSync(ctx context.Context, employeeID string) (bool, error)
	// Records a completed sync at the current clock time
	MarkSynced(ctx context.Context, employeeID string) error
}

// KV is the slice of redis the gate needs. redis.Client satisfies it.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type Gate struct {
	kv        KV
	now       func() time.Time
	threshold time.Duration
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

func New(cfg *RedisCfg) *Gate {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for sync gate: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return NewWithKV(client, time.Now)
}

func NewWithKV(kv KV, now func() time.Time) *Gate {
	if kv == nil || now == nil {
		log.Fatal("on sync gate provided nil kv or clock")
	}
	return &Gate{
		kv:        kv,
		now:       now,
		threshold: AutoSyncThreshold,
	}
}

func (g *Gate) ShouldAutoSync(ctx context.Context, employeeID string) (bool, error) {
	val, err := g.kv.Get(ctx, keyPrefix+employeeID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, errors.New("reading last sync time error: " + err.Error())
	}
	last, err := time.Parse(time.RFC3339, val)
	if err != nil {
		// A garbled timestamp should not wedge the gate shut
		return true, nil
	}
	return g.now().Sub(last) > g.threshold, nil
}

func (g *Gate) MarkSynced(ctx context.Context, employeeID string) error {
	stamp := g.now().Format(time.RFC3339)
	if err := g.kv.Set(ctx, keyPrefix+employeeID, stamp, 0).Err(); err != nil {
		return errors.New("recording last sync time error: " + err.Error())
	}
	return nil
}
