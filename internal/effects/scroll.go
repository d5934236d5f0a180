package effects

const (
	SlimThreshold = 80.0  // scrollY past which the nav slims and to-top shows
	SectionOffset = 220.0 // how early a section counts as active
)

// Section is a navigable page section and its document offset.
type Section struct {
	ID  string
	Top float64
}

// Nav is everything the header derives from the scroll position.
type Nav struct {
	Slim     bool
	ToTop    bool
	Active   string
	Progress float64 // percent, 0..100
}

// Progress returns how far the document has been scrolled, in percent.
// A document that fits the viewport reports 0.
func Progress(scrollTop, scrollHeight, clientHeight float64) float64 {
	span := scrollHeight - clientHeight
	if span <= 0 {
		return 0
	}
	p := scrollTop / span * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ActiveSection returns the last section whose top, less SectionOffset, has
// been scrolled past. Sections are expected in document order.
func ActiveSection(sections []Section, scrollY float64) string {
	active := ""
	for _, s := range sections {
		if scrollY >= s.Top-SectionOffset {
			active = s.ID
		}
	}
	return active
}

func Track(scrollY, scrollHeight, clientHeight float64, sections []Section) Nav {
	return Nav{
		Slim:     scrollY > SlimThreshold,
		ToTop:    scrollY > SlimThreshold,
		Active:   ActiveSection(sections, scrollY),
		Progress: Progress(scrollY, scrollHeight, clientHeight),
	}
}
