package domain

import "time"

// DecodeInfo records the outcome of one successful hierarchy decode for
// the journal: what was read, a fingerprint of the file and of the
// resulting model, and basic size figures for the stats view.
type DecodeInfo struct {
	Path         string        `json:"path,omitzero"`
	Format       Format        `json:"format,omitzero"`
	FileHash     string        `json:"file_hash,omitzero"`
	ModelHash    string        `json:"model_hash,omitzero"`
	CellCount    int           `json:"cell_count,omitzero"`
	TopCellCount int           `json:"top_cell_count,omitzero"`
	EdgeCount    int           `json:"edge_count,omitzero"`
	Duration     time.Duration `json:"duration,omitzero"`
	Timestamp    time.Time     `json:"timestamp,omitzero"`
}
