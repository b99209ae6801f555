package main

// PassThreshold is the lowest mean that still counts as passing.
const PassThreshold = 7.0

type Metric struct {
	Count int
	Sum   float64
}

func NewMetric(values ...float64) *Metric {
	m := &Metric{}
	for _, v := range values {
		m.Add(v)
	}
	return m
}

func (m *Metric) Add(v float64) {
	m.Count++
	m.Sum += v
}

func (m *Metric) Avg() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Sum / float64(m.Count)
}

func (m *Metric) Passed() bool {
	return m.Avg() >= PassThreshold
}
