package volume

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
)

// blobPath derives the on-disk location for a key: the lowercase hex MD5
// of the key bytes, fanned out two directory levels deep. The hash is for
// uniform fan-out, not integrity; colliding keys overwrite each other,
// which a non-adversarial keyspace makes acceptable.
func (s *Server) blobPath(key string) string {
	sum := md5.Sum([]byte(key))
	digest := hex.EncodeToString(sum[:])
	return filepath.Join(s.root, digest[0:1], digest[1:2], digest[2:])
}
