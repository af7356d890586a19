package main

// Build-time variables set via ldflags during releases
var (
	version = "latest" // version is the application version shown by --version
)
