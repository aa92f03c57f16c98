// Package internal is the SDL rendering backend: window and renderer setup,
// fonts, texture caches, input mapping and the painter that draws a laid-out
// view frame. Types and functions in this package are not part of the public API.
package internal
