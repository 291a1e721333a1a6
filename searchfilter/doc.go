// Package searchfilter discovers which product attributes a Magento backend
// supports as search filters and caches the merged metadata.
//
// # Overview
//
// Discovery is a two-query sequence against the commerce backend:
//
//  1. An introspection query asks the schema which input fields the product
//     filter input type exposes.
//  2. A batched customAttributeMetadata query fetches the attribute type and
//     filter input type for each discovered field.
//
// The AttributeConverter merges both results into FilterAttributeMetadata
// records, joined by attribute code. The queries run strictly in sequence:
// the second query's inputs are the first query's outputs.
//
// # Caching Behavior
//
// CachedService follows a read-through caching pattern:
//
//  1. Check cache for the serialized key (method name + store view)
//  2. If cache hit, return cached result with zero remote calls
//  3. If cache miss, run the two-query discovery
//  4. Store the result, unless the fetch degraded
//  5. Return the result to the caller
//
// Concurrent callers on a cold key share one discovery round trip; the cache
// store coalesces in-flight fetches per key.
//
// # Error Handling
//
// This layer feeds UI rendering, so no failure is ever raised to the caller.
// Remote failures, whether the client cannot be obtained or the response
// carries error entries, are logged with message and category and degrade the
// operation to an empty list. Degraded results are not written to the cache:
// a transient outage is retried on the next call rather than served stale for
// a full TTL. The inner Service additionally reports what went wrong through
// its RemoteError return, for callers that need to observe degradation.
//
// A conversion lookup miss is softer still: the affected record keeps its
// slot and carries only the attribute code, so the returned list length
// always matches the number of discovered fields on the successful path.
package searchfilter
