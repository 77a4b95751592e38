// Package models defines the core domain models for the phone tracing
// service.
//
// # Models
//
//   - Account: a registered user that owns resolution history
//   - HistoryRecord: one persisted phone resolution, owned by an account
//   - ResolutionResult: the assembled outcome of resolving a raw number
//
// # Design Principles
//
//  1. **Plain data**: models carry no behavior beyond trivial accessors so
//     they can cross package boundaries freely
//  2. **Explicit ownership**: history records reference their owning account
//     by numeric id, never by pointer, to avoid circular references
//  3. **Nullable pairs**: latitude/longitude are pointer-typed and are always
//     both set or both nil; the country code follows the coordinates
package models
