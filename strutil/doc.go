// Package strutil provides small string helpers.
package strutil
