/*
Package index provides the durable key index for the Kalavara master.

The index is the authoritative mapping from key to the volume server the
key's blob lives on. It is backed by an embedded BoltDB database stored in
the master's data directory, so placements survive restarts without any
external service.

# Semantics

Every key maps to exactly one volume URL at any instant. Put replaces the
mapping wholesale and reports the previous holder, which lets the caller
settle per-volume counters when a key moves. Delete is the only way an
entry disappears.

BoltDB serializes writers internally; the handle is safe to share across
the request workers, and point reads run concurrently under its MVCC view.

# Usage

	store, err := index.NewBoltStore("/tmp/kalavaradb")
	if err != nil {
		log.Fatal("failed to open database")
	}
	defer store.Close()

	prev, err := store.Put("key1", "http://localhost:7000")
	volume, err := store.Get("key1")

Lookups for absent keys return index.ErrNotFound, which the master maps to
an HTTP 404.
*/
package index
