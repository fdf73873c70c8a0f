package resource

// DefaultFont is the built-in 4x6 glyph table for codes 32 through 127 in
// NewFont's encoding: a four byte header followed by one bit per pixel,
// row-major, high bit first.
var DefaultFont = []byte{
	0x20, 0x60, 0x04, 0x06, 0x00, 0x00, 0x00, 0x44, 0x40, 0x40, 0xaa, 0x00,
	0x00, 0xae, 0xae, 0xa0, 0x6c, 0xe6, 0xc0, 0x82, 0x48, 0x20, 0xcc, 0x6a,
	0x60, 0x44, 0x00, 0x00, 0x24, 0x44, 0x20, 0x84, 0x44, 0x80, 0xa4, 0xe4,
	0xa0, 0x04, 0xe4, 0x00, 0x00, 0x04, 0x80, 0x00, 0xe0, 0x00, 0x00, 0x00,
	0x40, 0x22, 0x48, 0x80, 0xea, 0xaa, 0xe0, 0x4c, 0x44, 0xe0, 0xe2, 0xe8,
	0xe0, 0xe2, 0xe2, 0xe0, 0xaa, 0xe2, 0x20, 0xe8, 0xe2, 0xe0, 0x88, 0xea,
	0xe0, 0xe2, 0x22, 0x20, 0xea, 0xea, 0xe0, 0xea, 0xe2, 0x20, 0x04, 0x04,
	0x00, 0x04, 0x04, 0x80, 0x24, 0x84, 0x20, 0x0e, 0x0e, 0x00, 0x84, 0x24,
	0x80, 0xe2, 0x60, 0x40, 0x4a, 0xe8, 0x60, 0x4a, 0xea, 0xa0, 0xca, 0xca,
	0xc0, 0x68, 0x88, 0x60, 0xca, 0xaa, 0xc0, 0xe8, 0xe8, 0xe0, 0xe8, 0xe8,
	0x80, 0x68, 0xaa, 0x60, 0xaa, 0xea, 0xa0, 0xe4, 0x44, 0xe0, 0x22, 0x2a,
	0x40, 0xaa, 0xca, 0xa0, 0x88, 0x88, 0xe0, 0xae, 0xea, 0xa0, 0xca, 0xaa,
	0xa0, 0x4a, 0xaa, 0x40, 0xca, 0xc8, 0x80, 0x4a, 0xac, 0x60, 0xca, 0xca,
	0xa0, 0x68, 0x42, 0xc0, 0xe4, 0x44, 0x40, 0xaa, 0xaa, 0x60, 0xaa, 0xa4,
	0x40, 0xaa, 0xee, 0xa0, 0xaa, 0x4a, 0xa0, 0xaa, 0x44, 0x40, 0xe2, 0x48,
	0xe0, 0xc8, 0x88, 0xc0, 0x88, 0x42, 0x20, 0x62, 0x22, 0x60, 0x4a, 0x00,
	0x00, 0x00, 0x00, 0xe0, 0x84, 0x00, 0x00, 0x06, 0xaa, 0x60, 0x8c, 0xaa,
	0xc0, 0x06, 0x88, 0x60, 0x26, 0xaa, 0x60, 0x06, 0xac, 0x60, 0x24, 0xe4,
	0x40, 0x06, 0xa6, 0x2c, 0x8c, 0xaa, 0xa0, 0x40, 0x44, 0x40, 0x20, 0x22,
	0xa4, 0x8a, 0xca, 0xa0, 0xc4, 0x44, 0xe0, 0x0e, 0xea, 0xa0, 0x0c, 0xaa,
	0xa0, 0x04, 0xaa, 0x40, 0x0c, 0xaa, 0xc8, 0x06, 0xaa, 0x62, 0x06, 0x88,
	0x80, 0x06, 0xc6, 0xc0, 0x4e, 0x44, 0x60, 0x0a, 0xaa, 0x60, 0x0a, 0xae,
	0x40, 0x0a, 0xee, 0xe0, 0x0a, 0x44, 0xa0, 0x0a, 0xa6, 0x2c, 0x0e, 0x6c,
	0xe0, 0x64, 0xc4, 0x60, 0x44, 0x44, 0x40, 0xc4, 0x64, 0xc0, 0x02, 0xe8,
	0x00, 0xee, 0xee, 0xe0,
}
