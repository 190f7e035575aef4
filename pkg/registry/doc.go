/*
Package registry tracks volume servers and places new keys on them.

The registry is the master's in-memory view of the volume pool: a map from
canonical volume URL (no trailing slash) to the number of keys currently
placed there. It backs two things — the admin add-volume endpoint, and the
placement decision made on every write.

# Concurrency

A single reader-writer lock guards the map. Placement holds the read lock
for the duration of its scan; admin adds and counter updates hold the write
lock for one map mutation. Counter updates for URLs that are not registered
are deliberate no-ops: the registry and the durable index are not updated
transactionally, and the counters are placement hints, not accounting truth.

# Placement

Pick samples volumes inversely proportional to their outstanding key count.
The sampler reads the registry once, clamps zero counters to one so an idle
volume stays selectable, and inverts the running cumulative weight so that
lightly loaded volumes cover larger slices of the draw interval. No state is
carried between calls, so the volume pool can change freely underneath it.
*/
package registry
