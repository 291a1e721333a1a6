package searchfilter

import "github.com/goliatone/go-magento-filter-cache/magento"

// AttributeConverter merges discovered input fields with fetched attribute
// metadata. Attributes are indexed by code once per batch, so the join is
// keyed rather than positional: the backend reordering its result list cannot
// mismatch codes.
type AttributeConverter struct {
	byCode map[string]magento.Attribute
}

// NewAttributeConverter indexes the attribute batch fetched in one response.
func NewAttributeConverter(attributes []magento.Attribute) *AttributeConverter {
	byCode := make(map[string]magento.Attribute, len(attributes))
	for _, attr := range attributes {
		byCode[attr.Code] = attr
	}
	return &AttributeConverter{byCode: byCode}
}

// Convert produces the metadata record for one discovered field. When no
// attribute matches the field name the record carries only the code, keeping
// the output list the same length as the discovered field list.
func (c *AttributeConverter) Convert(field magento.InputField) FilterAttributeMetadata {
	attr, ok := c.byCode[field.Name]
	if !ok {
		return FilterAttributeMetadata{AttributeCode: field.Name}
	}
	return FilterAttributeMetadata{
		AttributeCode:   attr.Code,
		AttributeType:   attr.AttributeType,
		FilterInputType: attr.InputType,
	}
}
