// Package crypto contains the cryptographic routines used by the
// Merkle AVL tree:
// - hash arbitrary data (`Digest`) using sha3 (shake128)
// - generate a random slice of bytes.
package crypto
