// Package session stores bounded per-user conversation histories in memory.
//
// Each user owns an ordered history of at most MaxHistory turns. Appends past
// capacity evict the oldest turn first. Histories for different users are
// fully independent; mutations for the same user are serialized by a per-user
// lock so overlapping messages from one chat cannot corrupt the eviction
// order. Snapshots are copies and stay valid after later writes.
package session
