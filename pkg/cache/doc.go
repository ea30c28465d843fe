// Package cache provides byte-oriented caching backends for downloaded
// Linguist datasets.
//
// # Backends
//
//   - [FileCache]: JSON entries on local disk, used by the CLI
//   - [RedisCache]: shared cache for several `linguist serve` instances
//   - [NullCache]: never stores anything (--no-cache)
//
// All backends implement [Cache]. Entries carry a TTL; a zero TTL means the
// entry never expires.
//
// # Keys
//
// Callers namespace their keys with a prefix, e.g. "linguist:" followed by
// the source URL. [FileCache] hashes keys into a two-level directory tree so
// arbitrary strings are safe as keys.
package cache
