// Copyright 2025 Certen Protocol
//
// Package checkpoint batches the head digests of many independent
// Cryptographic Event Logs into a single Merkle root, so a single
// Bitcoin inscription can anchor a whole batch of btco migrations
// instead of one inscription per asset. A Checkpoint's root is what
// pkg/layer's btco migration manager hands to an Inscriber when a
// caller chooses to anchor in batches; each log's InclusionProof lets
// a verifier confirm its digest was part of the anchored root without
// re-deriving the whole batch.
package checkpoint

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/certen/cel-go/pkg/digest"
)

// ErrEmptyBatch is returned when building a Checkpoint from no digests.
var ErrEmptyBatch = errors.New("checkpoint: cannot build from an empty batch")

// ErrLeafNotFound is returned when a digest is not present in a Checkpoint.
var ErrLeafNotFound = errors.New("checkpoint: digest not found in batch")

// Side indicates which side of a hash pair a proof step's sibling sits on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ProofStep is one sibling hash on the path from a leaf to the root.
type ProofStep struct {
	Digest string `json:"digest"`
	Side   Side   `json:"side"`
}

// InclusionProof shows that a single log digest was included in a
// Checkpoint's root.
type InclusionProof struct {
	LeafDigest string      `json:"leafDigest"`
	LeafIndex  int         `json:"leafIndex"`
	Root       string      `json:"root"`
	Path       []ProofStep `json:"path"`
	BatchSize  int         `json:"batchSize"`
}

// Checkpoint is a Merkle batch over a fixed set of CEL head digests.
type Checkpoint struct {
	mu     sync.RWMutex
	leaves [][]byte
	levels [][][]byte
	root   []byte
}

// Build constructs a Checkpoint from the head digest of every log in a
// batch, in the given order. Digests must be the standard 'u'-prefixed
// multibase SHA-256 strings produced by pkg/digest.
func Build(logDigests []string) (*Checkpoint, error) {
	if len(logDigests) == 0 {
		return nil, ErrEmptyBatch
	}

	leaves := make([][]byte, len(logDigests))
	for i, d := range logDigests {
		raw, err := digest.Decode(d)
		if err != nil {
			return nil, fmt.Errorf("checkpoint: leaf %d: %w", i, err)
		}
		leaves[i] = raw
	}

	c := &Checkpoint{leaves: leaves}
	c.build()
	return c, nil
}

func (c *Checkpoint) build() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := make([][]byte, len(c.leaves))
	copy(current, c.leaves)
	c.levels = [][][]byte{current}

	for len(current) > 1 {
		next := make([][]byte, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, hashPair(current[i], current[i+1]))
			} else {
				next = append(next, hashPair(current[i], current[i]))
			}
		}
		c.levels = append(c.levels, next)
		current = next
	}
	c.root = current[0]
}

func hashPair(left, right []byte) []byte {
	combined := make([]byte, 0, len(left)+len(right))
	combined = append(combined, left...)
	combined = append(combined, right...)
	sum := sha256.Sum256(combined)
	return sum[:]
}

// Root returns the checkpoint's root digest, encoded the same way as
// any other CEL digest.
func (c *Checkpoint) Root() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return digest.EncodeRaw(c.root)
}

// BatchSize returns the number of logs folded into this checkpoint.
func (c *Checkpoint) BatchSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.leaves)
}

// ProveInclusion builds an InclusionProof for the log digest at the
// given index in the batch Build was called with.
func (c *Checkpoint) ProveInclusion(index int) (*InclusionProof, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.leaves) {
		return nil, fmt.Errorf("checkpoint: index %d out of range [0, %d)", index, len(c.leaves))
	}

	rootDigest, err := digest.EncodeRaw(c.root)
	if err != nil {
		return nil, err
	}
	leafDigest, err := digest.EncodeRaw(c.leaves[index])
	if err != nil {
		return nil, err
	}

	proof := &InclusionProof{
		LeafDigest: leafDigest,
		LeafIndex:  index,
		Root:       rootDigest,
		BatchSize:  len(c.leaves),
	}

	current := index
	for level := 0; level < len(c.levels)-1; level++ {
		nodes := c.levels[level]
		var siblingIndex int
		var side Side
		if current%2 == 0 {
			siblingIndex, side = current+1, SideRight
		} else {
			siblingIndex, side = current-1, SideLeft
		}

		var sibling []byte
		if siblingIndex < len(nodes) {
			sibling = nodes[siblingIndex]
		} else {
			sibling = nodes[current]
			side = SideRight
		}

		siblingDigest, err := digest.EncodeRaw(sibling)
		if err != nil {
			return nil, err
		}
		proof.Path = append(proof.Path, ProofStep{Digest: siblingDigest, Side: side})
		current /= 2
	}

	return proof, nil
}

// VerifyInclusion reports whether proof shows proof.LeafDigest was
// included in a checkpoint whose root is proof.Root, without needing
// the full Checkpoint.
func VerifyInclusion(proof *InclusionProof) (bool, error) {
	leaf, err := digest.Decode(proof.LeafDigest)
	if err != nil {
		return false, fmt.Errorf("checkpoint: decode leaf: %w", err)
	}
	root, err := digest.Decode(proof.Root)
	if err != nil {
		return false, fmt.Errorf("checkpoint: decode root: %w", err)
	}

	if len(proof.Path) == 0 {
		return subtle.ConstantTimeCompare(leaf, root) == 1, nil
	}

	current := leaf
	for _, step := range proof.Path {
		sibling, err := digest.Decode(step.Digest)
		if err != nil {
			return false, fmt.Errorf("checkpoint: decode sibling: %w", err)
		}
		if step.Side == SideLeft {
			current = hashPair(sibling, current)
		} else {
			current = hashPair(current, sibling)
		}
	}

	return subtle.ConstantTimeCompare(current, root) == 1, nil
}
