// internal/assets/icon.go
package assets

// PointCounterIcon is the 96x64 launcher icon, 2-bit RLE, 468 bytes.
var PointCounterIcon = []byte("" +
	"\x02\x60\x40\x0b\x40\xfd\x41\x80\x56\x81\xc0\xfc\xd8\x40\xff\x42" +
	"\x3f\x05\x80\xfd\x82\x18\xc2\x3f\x04\x83\x19\xc2\x3f\x03\x82\x1b" +
	"\xc2\x3f\x01\x82\x1c\xc2\x3f\x00\x83\x1d\xc2\x3e\x82\x1f\xc1\x3d" +
	"\x83\x1f\xc2\x3c\x82\x21\xc2\x3a\x83\x21\xc2\x3a\x82\x23\xc2\x38" +
	"\x82\x25\xc1\x37\x83\x25\xc2\x36\x82\x27\xc2\x34\x83\x1a\xc0\xeb" +
	"\xc2\x0b\x40\xfc\x42\x34\x82\x1b\xc2\x0c\x42\x32\x83\x0e\xc2\x08" +
	"\xc5\x0d\x42\x31\x82\x0f\xc2\x08\xc5\x0d\x42\x30\x82\x10\xc2\x0b" +
	"\xc2\x0e\x42\x2e\x83\x10\xc2\x0b\xc2\x0f\x41\x2e\x82\x11\xc2\x0b" +
	"\xc2\x0f\x42\x2d\x80\xff\x82\x0c\xcc\x06\xc2\x0f\xc0\xfd\xc1\x40" +
	"\x56\x41\x80\xfc\x98\xc0\xff\xc1\x14\x82\x0c\x40\xeb\x4c\x06\x42" +
	"\x0f\x80\xfd\x82\x18\xc0\xfc\xc2\x14\xc2\x10\x42\x0b\x42\x0e\x82" +
	"\x1a\xc2\x13\xc2\x10\x42\x0b\x42\x0e\x82\x1a\xc2\x14\xc2\x0f\x42" +
	"\x08\x48\x0a\x82\x1c\xc2\x13\xc2\x0f\x42\x08\x48\x09\x83\x1d\xc1" +
	"\x14\xc2\x0e\x42\x19\x82\x1e\xc2\x14\xc1\x28\x83\x1f\xc1\x14\xc2" +
	"\x27\x82\x20\xc2\x14\xc2\x25\x82\x22\xc2\x13\xc2\x24\x83\x22\xc2" +
	"\x14\xc2\x23\x82\x24\xc2\x13\xc2\x22\x83\x24\xc2\x14\xc2\x21\x82" +
	"\x26\xc2\x13\xc2\x20\x82\x27\xc2\x14\xc2\x1e\x83\x18\x46\x0a\xc2" +
	"\x13\xc2\x1e\x82\x18\x49\x09\xc1\x14\xc2\x1c\x83\x0f\x42\x07\x41" +
	"\x06\x42\x09\xc2\x14\xc1\x1c\x82\x10\x42\x0e\x42\x0a\xc1\x14\xc2" +
	"\x1a\x82\x11\x42\x0d\x42\x0b\xc2\x14\xc2\x19\x82\x11\x42\x0a\x44" +
	"\x0d\xc2\x13\xc2\x18\x82\x12\x42\x0a\x45\x0c\xc2\x14\x40\x56\x41" +
	"\xd8\x80\xff\x82\x0d\xc0\xeb\xcc\x08\xc3\x0b\x40\xfd\x41\x80\x56" +
	"\x81\x2d\xc0\xfc\xc2\x0d\x40\xeb\x4c\x09\x42\x0b\x80\xfd\x82\x2e" +
	"\xc2\x11\x42\x0e\x42\x0a\x83\x2f\xc1\x11\x42\x07\x41\x05\x43\x0a" +
	"\x82\x30\xc2\x10\x42\x07\x48\x0a\x82\x32\xc2\x0f\x42\x08\x46\x0b" +
	"\x82\x32\xc2\x0f\x42\x18\x82\x34\xc2\x28\x82\x35\xc1\x27\x82\x36" +
	"\xc2\x25\x83\x37\xc2\x24\x82\x38\xc2\x23\x83\x39\xc2\x22\x82\x3a" +
	"\xc2\x21\x83\x3b\xc2\x20\x82\x3d\xc2\x1e\x82\x3e\xc2\x1e\x82\x3f" +
	"\x00\xc2\x1c\x82\x3f\x01\xc2\x1c\x82\x3f\x02\xc2\x1a\x82\x3f\x04" +
	"\xc1\x19\x83\x12")
