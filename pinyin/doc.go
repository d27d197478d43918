// Package pinyin classifies Chinese strings into first-letter pinyin
// buckets and groups collections by them.
//
// Classification compares the first rune against per-letter boundary
// characters under the zh collation, so no pinyin dictionary is needed.
package pinyin
