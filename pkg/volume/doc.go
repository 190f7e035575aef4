/*
Package volume implements the Kalavara blob service.

A volume server owns a directory tree of blobs and nothing else: no index,
no registry, no knowledge of its peers. State lives entirely on disk, keyed
by a deterministic function of the key, so a volume process can be killed
and restarted freely.

# On-disk layout

	<data_root>/
	    tmp/              in-flight writes (same filesystem as the blobs)
	    <h0>/<h1>/<rest>  published blobs, h = lowercase hex MD5 of key

# Atomic publish

Writes stream the request body into a uniquely named file under tmp/, then
rename it onto the blob path. Rename within one filesystem is atomic and
replaces any existing file, so a concurrent reader observes the old blob,
the new blob, or a not-found error — never a truncated file. Any failed
step removes the temp file best-effort and surfaces a 500.

# Self-registration

When started with a master URL and a base URL, the server announces itself
through the master's add-volume endpoint before serving. Registration is
one attempt; a failure is logged and ignored, since an operator can issue
the same POST by hand at any time.
*/
package volume
