// Package storage is the local persistence adapter of the storefront client.
//
// Two kinds of storage are offered, mirroring what a browser gives a page:
//
//   - DurableStore: per-device key/value strings that live until removed
//     (localStorage).
//   - ExpiringStore: small key/value strings with a time to live
//     (cookies). Clearing writes an already expired value.
//
// Both are implemented by several backends: SQLite (default, schema applied
// with goose), Redis, an in-memory store for tests, and, in js/wasm builds,
// the browser's own localStorage and document.cookie.
//
// The JSON helpers layered on top never hand a broken value to the caller:
// missing keys, backend errors and undecodable JSON all yield the fallback.
// The accompanying error is informational and is meant to be logged.
package storage
