package poculum

// ============================================================
// Tag table
// ============================================================
//
// One byte per value header. Multi-byte length/width fields that follow a
// tag are always big-endian. This table is pure data: it enumerates the
// wire tags Poculum actually emits and accepts. Tags the format's README
// advertises but the codec never produces (128-bit integers, String32's
// siblings List32/Map32) are deliberately not declared here — see the
// "Stub size classes" note in SPEC_FULL.md §9.

const (
	tagNull = 0x00

	tagUInt8  = 0x01 // also used for Bool: payload 0x00/0x01
	tagUInt16 = 0x02
	tagUInt32 = 0x03
	tagUInt64 = 0x04

	tagInt8  = 0x11
	tagInt16 = 0x12
	tagInt32 = 0x13
	tagInt64 = 0x14

	tagFloat64 = 0x22

	tagFixStringLow  = 0x30
	tagFixStringHigh = 0x3F
	tagFixStringMask = 0x0F
	tagString16      = 0x41
	tagString32      = 0x42

	tagFixListLow  = 0x50
	tagFixListHigh = 0x5F
	tagFixListMask = 0x0F
	tagList16      = 0x61

	tagFixMapLow  = 0x70
	tagFixMapHigh = 0x7F
	tagFixMapMask = 0x0F
	tagMap16      = 0x81

	tagBytes8  = 0x91
	tagBytes16 = 0x92
)

// maxFixLen is the largest length a Fix* tag's low nibble can carry.
const maxFixLen = 0x0F

const (
	maxUint8Range  = 0xFF
	maxUint16Range = 0xFFFF
	maxUint32Range = 0xFFFFFFFF

	minInt8Range  = -128
	minInt16Range = -32768
	minInt32Range = -(1 << 31)

	maxBytes8Range  = 0xFF
	maxBytes16Range = 0xFFFF
)
