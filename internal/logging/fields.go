package logging

// Standardized attribute keys shared across components.
const (
	FieldComponent = "component"
	FieldScanID    = "scan_id"
	FieldMedia     = "media"
	FieldTrack     = "track"
	FieldSegment   = "segment"
	FieldStatus    = "status"
)
