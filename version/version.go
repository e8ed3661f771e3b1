package version

// Version is the build version, set with -ldflags at release time.
var Version = "dev"
