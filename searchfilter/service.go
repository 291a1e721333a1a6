package searchfilter

import (
	"context"

	"github.com/goliatone/go-magento-filter-cache/magento"
	"go.uber.org/zap"
)

// Service discovers which product attributes the backend supports as search
// filters: an introspection query finds the filterable fields, a follow-up
// query fetches their type metadata, and the converter merges the two.
//
// Every remote failure is logged and contained, never raised: the Fetcher
// contract degrades to an empty list so UI callers always have something to
// render. Degradation is still visible through the returned RemoteError list.
type Service struct {
	clients magento.ClientFactory
	logger  *zap.Logger
}

// NewService builds a discovery service on top of a client factory.
// A nil logger defaults to zap.NewNop().
func NewService(clients magento.ClientFactory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{clients: clients, logger: logger}
}

// FetchCurrentFilters performs the full two-query discovery for one store
// view. The introspection query runs first; the metadata query depends on its
// output and is skipped entirely when discovery came back empty. The returned
// slice preserves discovery order and, on the successful path, has one entry
// per discovered field.
func (s *Service) FetchCurrentFilters(ctx context.Context, storeView string) ([]FilterAttributeMetadata, []RemoteError) {
	fields, errs := s.fetchAvailableSearchFilters(ctx, storeView)
	if len(errs) > 0 {
		return []FilterAttributeMetadata{}, errs
	}
	if len(fields) == 0 {
		return []FilterAttributeMetadata{}, nil
	}

	attributes, errs := s.fetchAttributeMetadata(ctx, storeView, fields)
	if len(errs) > 0 {
		return []FilterAttributeMetadata{}, errs
	}

	converter := NewAttributeConverter(attributes)
	result := make([]FilterAttributeMetadata, 0, len(fields))
	for _, field := range fields {
		result = append(result, converter.Convert(field))
	}
	return result, nil
}

// fetchAvailableSearchFilters asks the schema which fields the filter input
// type exposes.
func (s *Service) fetchAvailableSearchFilters(ctx context.Context, storeView string) ([]magento.InputField, []RemoteError) {
	client, err := s.clients.Create(storeView, true)
	if err != nil {
		s.logger.Error("unable to obtain introspection client, cannot fetch available filter attributes",
			zap.String("store_view", storeView), zap.Error(err))
		return nil, []RemoteError{{Stage: "introspection", Message: err.Error()}}
	}

	resp, err := client.ExecuteIntrospection(ctx, magento.FilterIntrospectionQuery)
	if err != nil {
		s.logger.Error("filter introspection query failed",
			zap.String("store_view", storeView), zap.Error(err))
		return nil, []RemoteError{{Stage: "introspection", Message: err.Error()}}
	}
	if resp.HasErrors() {
		return nil, s.logResponseErrors("introspection", resp.Errors)
	}

	var payload magento.IntrospectionData
	if err := resp.DecodeInto(&payload); err != nil {
		s.logger.Error("unable to decode filter introspection response",
			zap.String("store_view", storeView), zap.Error(err))
		return nil, []RemoteError{{Stage: "introspection", Message: err.Error()}}
	}

	return payload.Type.InputFields, nil
}

// fetchAttributeMetadata batches the discovered field names into a single
// customAttributeMetadata query.
func (s *Service) fetchAttributeMetadata(ctx context.Context, storeView string, fields []magento.InputField) ([]magento.Attribute, []RemoteError) {
	client, err := s.clients.Create(storeView, false)
	if err != nil {
		s.logger.Error("unable to obtain client, cannot fetch attribute metadata",
			zap.String("store_view", storeView), zap.Error(err))
		return nil, []RemoteError{{Stage: "metadata", Message: err.Error()}}
	}

	codes := make([]string, 0, len(fields))
	for _, field := range fields {
		codes = append(codes, field.Name)
	}

	resp, err := client.Execute(ctx, magento.AttributeMetadataQuery(codes))
	if err != nil {
		s.logger.Error("attribute metadata query failed",
			zap.String("store_view", storeView), zap.Error(err))
		return nil, []RemoteError{{Stage: "metadata", Message: err.Error()}}
	}
	if resp.HasErrors() {
		return nil, s.logResponseErrors("metadata", resp.Errors)
	}

	var payload magento.AttributeMetadataData
	if err := resp.DecodeInto(&payload); err != nil {
		s.logger.Error("unable to decode attribute metadata response",
			zap.String("store_view", storeView), zap.Error(err))
		return nil, []RemoteError{{Stage: "metadata", Message: err.Error()}}
	}

	return payload.CustomAttributeMetadata.Items, nil
}

// logResponseErrors logs each backend-reported error with its message and
// category, and converts the batch into RemoteErrors.
func (s *Service) logResponseErrors(stage string, errs []magento.ResponseError) []RemoteError {
	remote := make([]RemoteError, 0, len(errs))
	for _, e := range errs {
		s.logger.Error("an error has occurred",
			zap.String("stage", stage),
			zap.String("message", e.Message),
			zap.String("category", e.Category))
		remote = append(remote, RemoteError{Stage: stage, Message: e.Message, Category: e.Category})
	}
	return remote
}
