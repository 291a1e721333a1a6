package magento

// InputField is one filterable attribute identifier discovered through the
// schema introspection query.
type InputField struct {
	Name string `json:"name"`
}

// Attribute is the backend-reported metadata for one product attribute.
type Attribute struct {
	Code          string `json:"attribute_code"`
	AttributeType string `json:"attribute_type"`
	InputType     string `json:"input_type"`
}

// IntrospectionData is the payload shape of the filter introspection query.
type IntrospectionData struct {
	Type struct {
		InputFields []InputField `json:"inputFields"`
	} `json:"__type"`
}

// AttributeMetadataData is the payload shape of the customAttributeMetadata query.
type AttributeMetadataData struct {
	CustomAttributeMetadata struct {
		Items []Attribute `json:"items"`
	} `json:"customAttributeMetadata"`
}
