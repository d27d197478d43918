// Package pixel converts pixel values into relative-unit strings.
package pixel
