package magento

import (
	"encoding/json"
	"fmt"
)

// ResponseError is one backend-reported error entry: a human readable message
// plus the Magento error category (e.g. "graphql-no-such-entity").
type ResponseError struct {
	Message  string
	Category string
}

// Response is the GraphQL response envelope. It carries either a data payload
// or a non-empty list of errors; transport-level failures never reach this
// type, they surface as errors from Client.Execute.
type Response struct {
	Data   json.RawMessage
	Errors []ResponseError
}

// HasErrors reports whether the backend attached error entries to the response.
func (r *Response) HasErrors() bool {
	return len(r.Errors) > 0
}

// DecodeInto unmarshals the data payload into dest.
func (r *Response) DecodeInto(dest any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("magento: response has no data payload")
	}
	if err := json.Unmarshal(r.Data, dest); err != nil {
		return fmt.Errorf("magento: decode response data: %w", err)
	}
	return nil
}

// wireError matches Magento's GraphQL error convention, with the category
// tucked under extensions.
type wireError struct {
	Message    string `json:"message"`
	Extensions struct {
		Category string `json:"category"`
	} `json:"extensions"`
}

type wireResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []wireError     `json:"errors"`
}

// parseResponse decodes a raw GraphQL response body into the envelope.
func parseResponse(body []byte) (*Response, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("magento: decode response body: %w", err)
	}

	resp := &Response{Data: wire.Data}
	for _, e := range wire.Errors {
		resp.Errors = append(resp.Errors, ResponseError{
			Message:  e.Message,
			Category: e.Extensions.Category,
		})
	}
	return resp, nil
}
