// Package config reads runtime settings from the process environment.
//
// Every setting has a sensible default so the system runs with no
// configuration at all; variables are only needed to override paths,
// chunking parameters, or worker counts.
package config
