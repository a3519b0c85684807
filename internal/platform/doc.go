package platform

// Package platform contains OS integration: filesystem helpers, writing
// converted files to disk, and opening/revealing files with system tools.
