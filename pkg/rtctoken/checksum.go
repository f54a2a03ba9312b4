package rtctoken

import (
	"hash/crc32"
	"sync"
)

// The legacy format checksums the channel name and subject id with the
// reflected CRC-32 polynomial 0xEDB88320. The 256-entry table is built
// once on first use and is safe for concurrent readers.
var (
	crcOnce  sync.Once
	crcTable *crc32.Table
)

func checksum(b []byte) uint32 {
	crcOnce.Do(func() {
		crcTable = crc32.MakeTable(crc32.IEEE)
	})
	return crc32.Checksum(b, crcTable)
}
