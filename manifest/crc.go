package manifest

import (
	"strings"

	"github.com/bodgit/wwart/crc32"
)

// CRCFilename computes the checksum of a given filename using the same
// algorithm the Westwood engines apply to names inside their archives: the
// name is uppercased first and checksummed without its directory part.
func CRCFilename(filename string) uint32 {
	return crc32.Checksum([]byte(strings.ToUpper(filename)))
}
