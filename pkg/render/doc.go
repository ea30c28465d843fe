// Package render holds visual renderers for language metadata.
//
// The [nodelink] subpackage draws the Linguist group hierarchy (for example
// TSX grouped under TypeScript) as a Graphviz node-link diagram, with each
// node filled in the language's GitHub color.
//
// [nodelink]: github.com/matzehuels/linguist/pkg/render/nodelink
package render
