package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// CriteriaHash keys derived results by the filter criteria that produced them
type CriteriaHash Hash

// NewCriteriaHash hashes the canonical form of a set of criteria
func NewCriteriaHash(canonical string) CriteriaHash {
	return CriteriaHash(NewHash([]byte(canonical)))
}

func (h CriteriaHash) String() string { return Hash(h).String() }
