package respond

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// etag derives a weak validator from the first half of the body's MD5.
func etag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// matchETag reports whether an If-None-Match header lists tag or "*".
// Comparison is weak, so W/ prefixes on either side are ignored.
func matchETag(ifNoneMatch, tag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	tag = strings.TrimPrefix(tag, "W/")
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}
