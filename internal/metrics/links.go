package metrics

import "github.com/san-kum/coreforge/internal/particles"

type MeanLinks struct {
	name    string
	sum     float64
	samples int
}

func NewMeanLinks() *MeanLinks {
	return &MeanLinks{name: "mean_links"}
}

func (m *MeanLinks) Name() string { return m.name }

func (m *MeanLinks) Observe(st particles.FrameStats) {
	m.sum += float64(st.Links)
	m.samples++
}

func (m *MeanLinks) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanLinks) Reset() {
	m.sum = 0
	m.samples = 0
}

type PeakLinks struct {
	name string
	peak int
}

func NewPeakLinks() *PeakLinks {
	return &PeakLinks{name: "peak_links"}
}

func (p *PeakLinks) Name() string { return p.name }

func (p *PeakLinks) Observe(st particles.FrameStats) {
	if st.Links > p.peak {
		p.peak = st.Links
	}
}

func (p *PeakLinks) Value() float64 { return float64(p.peak) }

func (p *PeakLinks) Reset() { p.peak = 0 }

type MeanAlpha struct {
	name    string
	sum     float64
	samples int
}

func NewMeanAlpha() *MeanAlpha {
	return &MeanAlpha{name: "mean_alpha"}
}

func (m *MeanAlpha) Name() string { return m.name }

func (m *MeanAlpha) Observe(st particles.FrameStats) {
	m.sum += st.MeanAlpha
	m.samples++
}

func (m *MeanAlpha) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanAlpha) Reset() {
	m.sum = 0
	m.samples = 0
}
