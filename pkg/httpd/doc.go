/*
Package httpd provides the HTTP plumbing shared by the master and volume
servers: the response taxonomy, the data-plane dispatch, and the worker
pool both servers run their requests through.

# Architecture

	┌───────────────────── REQUEST PATH ─────────────────────┐
	│                                                         │
	│   net/http listener (opaque request source)             │
	│        │                                                │
	│        ▼  one shared MPSC queue                         │
	│   ┌─────────────────────────────────┐                   │
	│   │  Pool: T workers                │                   │
	│   │  - pull request, run handler    │                   │
	│   │  - synchronous end-to-end       │                   │
	│   └──────────────┬──────────────────┘                   │
	│                  ▼                                      │
	│   Dispatch(Service) on /store/<key>                     │
	│        GET / PUT|POST / DELETE → Response variant       │
	│                  ▼                                      │
	│   Response.Render: match tag, write status+body         │
	│                                                         │
	└─────────────────────────────────────────────────────────┘

# Response taxonomy

Response is a single closed set of cases (redirect, ok, created, deleted,
file, not-found, not-allowed, unavailable, server-error), each with its own
payload. Handlers build a Response and return it; rendering is one switch
on the tag. Redirects are 307 so the client replays the original method
and body against the volume server.

# Dispatch

Service is the capability set {Prefix, Get, Save, Delete} shared by both
server roles. Key extraction works on the raw request URI: strip the
prefix, cut at the first '?', pass the rest through byte-for-byte. Keys
are never decoded or re-encoded on the way in or out.

# Worker pool

Pool puts a fixed ceiling on concurrent request work. The listener's
connection goroutines enqueue onto one channel and block; T workers drain
it. Per-request work is synchronous within its worker — blocking on the
body reader, the filesystem or the index is expected and bounds nothing
but that worker.
*/
package httpd
