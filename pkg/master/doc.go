/*
Package master implements the Kalavara directory service.

The master is the stateful front door of the store. It owns the durable
key index (which volume holds each key) and the in-memory volume registry
(which volumes exist and how many keys each carries), and it answers every
data-plane request with a 307 redirect so payload bytes flow directly
between the client and a volume server.

# Routes

	/store/<key>          GET, PUT, POST, DELETE — data plane
	/admin/add-volume     POST                   — control plane
	anything else         404 "Path not found"

A write picks a volume via the load-biased placement sampler, persists the
placement, settles the per-volume counters and redirects. A read or delete
resolves the key through the index and redirects to whichever volume the
index names — even if that volume has since gone away; the master does no
health checking, and an operator removing a volume is outside the core
contract.

# Consistency

The index write and the counter update are two separate steps. A crash in
between leaves a counter drifted, which the design accepts: counters are
placement hints. The index itself always maps a key to exactly one volume.
*/
package master
