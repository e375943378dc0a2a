package domain

// ProgressInfo is a transient download-progress snapshot.
type ProgressInfo struct {
	Percent        float64 `json:"percent,omitempty" yaml:"percent,omitempty"`
	BytesPerSecond float64 `json:"bytesPerSecond,omitempty" yaml:"bytesPerSecond,omitempty"`
	Transferred    int64   `json:"transferred,omitempty" yaml:"transferred,omitempty"`
	Total          int64   `json:"total,omitempty" yaml:"total,omitempty"`
}

// Ratio returns the completed fraction clamped to [0, 1].
// A nil snapshot counts as no progress.
func (p *ProgressInfo) Ratio() float64 {
	if p == nil {
		return 0
	}
	ratio := p.Percent / 100
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// HasTransferStats reports whether byte counters are worth displaying.
func (p *ProgressInfo) HasTransferStats() bool {
	return p != nil && p.Total > 0
}
