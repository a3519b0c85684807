package flow

// Package flow declares the conversion flows the app exposes. A flow is pure
// configuration: accepted and offered formats, preference namespace, archive
// naming. All flows run through the same validator, engine, and packager.
