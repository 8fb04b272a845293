// Package profile loads the optional HCL file that supplies ambient
// settings: log level and format, and where default results are written.
//
// Expressions may reference the process environment through the env
// object, for example:
//
//	output {
//	  directory = "${env.HOME}/encrypted"
//	}
//
// A profile never carries the key, the source file, the cipher or the mode;
// those come from the command line only.
package profile
