package searchfilter

// FilterAttributeMetadata is the merged view of one filterable product
// attribute, consumed by downstream search UIs: the attribute code, the
// backend's attribute type, and the filter input widget type.
type FilterAttributeMetadata struct {
	AttributeCode   string `json:"attribute_code"`
	AttributeType   string `json:"attribute_type"`
	FilterInputType string `json:"filter_input_type"`
}

// RemoteError describes one recoverable failure encountered while talking to
// the commerce backend. The discovery service collects these instead of
// failing, so callers can observe degradation while still getting a result.
type RemoteError struct {
	// Stage is "introspection" or "metadata".
	Stage    string
	Message  string
	Category string
}
