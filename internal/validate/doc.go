package validate

// Package validate gates user-selected files before a conversion run: format
// admissibility, per-file size ceiling, and batch count ceiling. Validation is
// side-effect free and reports one failure per call.
