package models

// StatsEntry is a single bar of a grouped bar chart.
type StatsEntry struct {
	Value       float64 `json:"value"`
	Label       string  `json:"label,omitempty"`
	BucketColor string  `json:"bucketColor"`
}

// Stats holds the chart series and the raw transactions it was computed from.
type Stats struct {
	Stats        []StatsEntry  `json:"stats"`
	Transactions []Transaction `json:"transactions"`
}
