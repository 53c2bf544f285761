// Package checkpoint snapshots entity state with integrity hashing so
// execution can roll back to a known-good point. State is stored as
// canonical JSON; a restore that fails hash verification is corruption,
// never silently accepted.
package checkpoint

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	entcheckpoint "github.com/codeready-toolchain/maestro/ent/checkpoint"
)

// ErrCheckpointCorrupt means the stored blob no longer matches its
// integrity hash. Restore refuses to hand back tampered or damaged state.
var ErrCheckpointCorrupt = errors.New("checkpoint corrupt")

// ErrNoCheckpoint means the entity has no snapshot to restore or roll back
// to.
var ErrNoCheckpoint = errors.New("no checkpoint")

// stripeCount sizes the writer mutex table. Writers to the same entity
// serialize; unrelated entities rarely contend.
const stripeCount = 64

// Store snapshots and restores entity state.
type Store struct {
	client  *ent.Client
	stripes [stripeCount]sync.Mutex
}

// New creates a checkpoint store backed by the given ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

func (s *Store) stripe(entityType, entityID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(entityType))
	h.Write([]byte{0})
	h.Write([]byte(entityID))
	return &s.stripes[h.Sum32()%stripeCount]
}

// Encode renders state as canonical JSON: encoding/json sorts map keys, so
// identical state always produces identical bytes and thus an identical
// hash.
func Encode(state any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(state); err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint state: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Hash is the integrity hash over a canonical blob: SHA-256 hex.
func Hash(blob []byte) string {
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

// Snapshot persists one checkpoint and returns its id.
func (s *Store) Snapshot(ctx context.Context, entityType, entityID string, state any, reason, traceID string) (string, error) {
	blob, err := Encode(state)
	if err != nil {
		return "", err
	}

	mu := s.stripe(entityType, entityID)
	mu.Lock()
	defer mu.Unlock()

	row, err := s.client.Checkpoint.Create().
		SetID(uuid.NewString()).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetStateBlob(blob).
		SetIntegrityHash(Hash(blob)).
		SetReason(reason).
		SetTraceID(traceID).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to persist checkpoint: %w", err)
	}
	return row.ID, nil
}

// Latest returns the most recent checkpoint for an entity, or
// ErrNoCheckpoint.
func (s *Store) Latest(ctx context.Context, entityType, entityID string) (*ent.Checkpoint, error) {
	row, err := s.client.Checkpoint.Query().
		Where(
			entcheckpoint.EntityType(entityType),
			entcheckpoint.EntityID(entityID),
		).
		Order(ent.Desc(entcheckpoint.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNoCheckpoint, entityType, entityID)
		}
		return nil, fmt.Errorf("failed to query latest checkpoint: %w", err)
	}
	return row, nil
}

// Restore returns the verified state blob of one checkpoint. The hash is
// recomputed on every restore.
func (s *Store) Restore(ctx context.Context, checkpointID string) ([]byte, error) {
	row, err := s.client.Checkpoint.Get(ctx, checkpointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id %s", ErrNoCheckpoint, checkpointID)
		}
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if Hash(row.StateBlob) != row.IntegrityHash {
		return nil, fmt.Errorf("%w: checkpoint %s hash mismatch", ErrCheckpointCorrupt, checkpointID)
	}
	return row.StateBlob, nil
}

// Rollback returns the verified state to reinstate for an entity: the
// named checkpoint, or the most recent one when checkpointID is empty.
// The caller applies the state; the store only guarantees its integrity.
func (s *Store) Rollback(ctx context.Context, entityType, entityID, checkpointID string) ([]byte, error) {
	if checkpointID == "" {
		latest, err := s.Latest(ctx, entityType, entityID)
		if err != nil {
			return nil, err
		}
		checkpointID = latest.ID
	} else {
		// The named checkpoint must belong to the entity being rolled back.
		row, err := s.client.Checkpoint.Get(ctx, checkpointID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%w: id %s", ErrNoCheckpoint, checkpointID)
			}
			return nil, fmt.Errorf("failed to load checkpoint: %w", err)
		}
		if row.EntityType != entityType || row.EntityID != entityID {
			return nil, fmt.Errorf("checkpoint %s belongs to %s/%s, not %s/%s",
				checkpointID, row.EntityType, row.EntityID, entityType, entityID)
		}
	}
	return s.Restore(ctx, checkpointID)
}

// History lists an entity's checkpoints, newest first.
func (s *Store) History(ctx context.Context, entityType, entityID string, limit int) ([]*ent.Checkpoint, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.client.Checkpoint.Query().
		Where(
			entcheckpoint.EntityType(entityType),
			entcheckpoint.EntityID(entityID),
		).
		Order(ent.Desc(entcheckpoint.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
