package archive

// Package archive bundles successful conversion results for one-shot
// download: a direct save for a single result, a dated deflate zip for many,
// and individual saves as a fallback when archiving fails.
