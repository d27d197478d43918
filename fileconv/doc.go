// Package fileconv converts binary file content into base64 data URLs.
package fileconv
