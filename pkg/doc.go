// Package pkg holds the libraries behind the linguist command.
//
// # Overview
//
// GitHub Linguist describes several hundred languages in languages.yml.
// These packages turn that document into constant-time lookups and serve
// them in a few ways:
//
//  1. [linguist] - Data model, dataset parsing and the three lookup indices
//  2. [integrations] - Downloading the upstream document with caching and retries
//  3. [cache] - File, Redis and no-op response caches
//  4. [server] - HTTP lookup API
//  5. [export] - SQLite and MongoDB sinks
//  6. [render] - Group hierarchy diagrams
//
// Supporting packages: [errors] (coded errors), [httputil] (retry with
// backoff), [observability] (instrumentation hooks) and [buildinfo].
//
// # Quick Start
//
//	lang, ok := linguist.ByExtension("rs")
//	if ok {
//	    fmt.Println(lang.Name) // Rust
//	}
//
// [linguist]: github.com/matzehuels/linguist/pkg/linguist
// [integrations]: github.com/matzehuels/linguist/pkg/integrations
// [cache]: github.com/matzehuels/linguist/pkg/cache
// [server]: github.com/matzehuels/linguist/pkg/server
// [export]: github.com/matzehuels/linguist/pkg/export
// [render]: github.com/matzehuels/linguist/pkg/render
// [errors]: github.com/matzehuels/linguist/pkg/errors
// [httputil]: github.com/matzehuels/linguist/pkg/httputil
// [observability]: github.com/matzehuels/linguist/pkg/observability
// [buildinfo]: github.com/matzehuels/linguist/pkg/buildinfo
package pkg
