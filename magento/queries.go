package magento

import (
	"fmt"
	"strings"
)

// FilterInputTypeName is the GraphQL input type whose fields Magento accepts
// as product search filters.
const FilterInputTypeName = "ProductAttributeFilterInput"

// ProductEntityType is Magento's EAV entity type id for products.
const ProductEntityType = "4"

// FilterIntrospectionQuery asks the schema which fields the filter input type
// exposes, rather than asking for data.
const FilterIntrospectionQuery = `{__type(name: "` + FilterInputTypeName + `") {inputFields {name}}}`

// AttributeMetadataQuery builds the batched customAttributeMetadata query for
// the given attribute codes. Each lookup is tagged with the product entity
// type so Magento resolves the codes against the product attribute set.
func AttributeMetadataQuery(attributeCodes []string) string {
	var b strings.Builder
	b.WriteString("{customAttributeMetadata(attributes: [")
	for i, code := range attributeCodes {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{attribute_code: %q, entity_type: %q}", code, ProductEntityType)
	}
	b.WriteString("]) {items {attribute_code attribute_type input_type}}}")
	return b.String()
}
