package strkey

// crc16Table is the CRC16-XMODEM lookup table (polynomial 0x1021, init 0).
var crc16Table [256]uint16

func init() {
	for i := range crc16Table {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
		crc16Table[i] = crc
	}
}

func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = crc<<8 ^ crc16Table[byte(crc>>8)^b]
	}
	return crc
}

// checksum returns the CRC16 of data in the little-endian order used on the wire.
func checksum(data []byte) [2]byte {
	c := crc16(data)
	return [2]byte{byte(c), byte(c >> 8)}
}
