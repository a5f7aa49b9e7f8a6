package strokes

// pagedMap maps BMP code points (0..65535) to packed stroke counts.
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads. CJK Unified Ideographs span about
// 80 high-byte blocks, so a complete table needs ~40 KB of pages.
//
// Entries hold the mainland count in the low byte and the Taiwan count in the
// high byte. 0 means absent.
type pagedMap struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
}

// Get returns the packed entry for a BMP code point, or 0 if absent.
func (m *pagedMap) Get(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *pagedMap) NumPages() int { return len(m.Pages) >> 8 }

// ensurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *pagedMap) ensurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi = uint16(len(m.Pages) >> 8)
	m.Top[hi] = pi
	return pi
}

// Set sets bmp -> entry (entry may be 0 to clear).
func (m *pagedMap) Set(bmp uint16, entry uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if entry == 0 {
			return
		}
		pi = m.ensurePage(hi)
	}
	base := int(pi-1) << 8
	m.Pages[base+int(bmp&0xFF)] = entry
}

func pack(mainland, taiwan int) uint16 {
	return uint16(taiwan)<<8 | uint16(mainland)
}

func unpack(entry uint16, v Variant) int {
	if v == Traditional {
		return int(entry >> 8)
	}
	return int(entry & 0xFF)
}
