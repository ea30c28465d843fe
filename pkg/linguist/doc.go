// Package linguist provides programming-language metadata lookups backed by
// GitHub Linguist's languages.yml.
//
// # Overview
//
// The dataset is embedded into the binary, so the package-level lookups need
// neither network nor filesystem access:
//
//	lang, ok := linguist.ByExtension("rs")
//	if ok {
//	    fmt.Println(lang.Name, lang.Color) // Rust #dea584
//	}
//
// Three lookups are available, each case-insensitive:
//
//   - [ByName]: canonical name or any alias ("golang" finds Go)
//   - [ByExtension]: bare file extension without the leading dot ("py")
//   - [ByCodemirrorMode]: CodeMirror editor mode ("javascript")
//
// A miss is reported through the comma-ok boolean, never as an error.
//
// The embedded document is a trimmed subset of the upstream file: it holds
// 88 widely used languages, including records that share keys such as the
// .md and .m extensions. Languages outside it, such as Terraform, miss on
// [Default]. Load the full upstream file with [LoadFile] (or the CLI's
// --dataset flag) for complete coverage, or refresh the embedded copy with
// "linguist fetch --output pkg/linguist/languages.yml" before building.
//
// # Disambiguation
//
// Several languages can claim the same key. Records are processed in
// byte-wise order of their canonical names and each index resolves
// collisions with its own rule:
//
//   - Names and aliases: the first record to claim a key keeps it.
//   - Extensions: a record whose name or one of whose aliases equals the
//     extension displaces a record that merely lists it. Among records of
//     the same kind the first one wins. ".md" resolves to Markdown (alias
//     "md") even though "GCC Machine Description" sorts first.
//   - Editor modes: a record whose name equals the mode displaces the
//     others, so "javascript" resolves to JavaScript rather than JSON.
//
// # Custom Datasets
//
// [Load] and [LoadFile] build an [Index] from any document in the Linguist
// format. [Parse] and [Build] expose the two steps separately. An [Index] is
// immutable once built and safe for concurrent use without locking.
//
// # Absent and Empty Values
//
// Sequence fields distinguish a key missing from the source document (nil)
// from a key present with no entries (non-nil, zero length). Optional
// strings use the empty string for "not set"; Linguist never stores empty
// strings. The Has* methods on [Language] report presence.
package linguist
