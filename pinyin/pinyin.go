package pinyin

import (
	"slices"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Letters are the 23 pinyin initial buckets, in output order. The Latin
// letters I, U, and V never begin a pinyin syllable.
const Letters = "ABCDEFGHJKLMNOPQRSTWXYZ"

// boundaries[i] is the last character of the bucket Letters[i] under zh
// collation: a rune sorting at or before boundaries[i] has the pinyin
// initial Letters[i].
var boundaries = []string{
	"驁", "簿", "錯", "鵽", "樲", "鰒", "餜", "靃", "攟", "鬠", "纙", "鞪",
	"黁", "漚", "曝", "裠", "鶸", "蜶", "籜", "鶩", "鑂", "韻", "咗",
}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the package logger. The default is a nop logger; a
// nil argument restores it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Classifier assigns pinyin bucket letters. Safe for concurrent use.
type Classifier struct {
	mu  sync.Mutex
	col *collate.Collator
}

// NewClassifier creates a classifier backed by the zh collation.
func NewClassifier() *Classifier {
	return &Classifier{col: collate.New(language.Make("zh"))}
}

// Letter returns the single-letter bucket code for s, derived from its
// first rune: Han runes classify by pinyin initial, ASCII letters map to
// their uppercase form, and anything else - including an empty string -
// returns s unchanged after a logged warning.
func (c *Classifier) Letter(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case r >= 'a' && r <= 'z':
		return string(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z':
		return string(r)
	case unicode.Is(unicode.Han, r):
		return c.hanLetter(string(r))
	}

	logger.Load().Warn("pinyin: cannot classify string", zap.String("value", s))
	return s
}

func (c *Classifier) hanLetter(ch string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, boundary := range boundaries {
		if c.col.CompareString(ch, boundary) <= 0 {
			return string(Letters[i])
		}
	}
	// Past the last boundary: rare Han runes outside the collation range
	return string(Letters[len(Letters)-1])
}

func (c *Classifier) compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col.CompareString(a, b)
}

var defaultClassifier = struct {
	once sync.Once
	c    *Classifier
}{}

func def() *Classifier {
	defaultClassifier.once.Do(func() {
		defaultClassifier.c = NewClassifier()
	})
	return defaultClassifier.c
}

// Letter classifies s with the package-level classifier.
func Letter(s string) string {
	return def().Letter(s)
}

// Bucket is one letter group produced by Group.
type Bucket[T any] struct {
	Letter string
	Items  []T
}

// Group classifies every item by the pinyin initial of key(item) and
// returns the 23 letter buckets in fixed alphabetical order, regardless
// of input order. Items within a bucket are sorted by zh collation of
// their keys. Items that classify outside the 23 letters appear in no
// bucket. Group never fails.
func Group[T any](items []T, key func(T) string) []Bucket[T] {
	c := def()

	index := make(map[string][]T, len(Letters))
	for _, item := range items {
		letter := c.Letter(key(item))
		index[letter] = append(index[letter], item)
	}

	buckets := make([]Bucket[T], 0, len(Letters))
	for _, l := range Letters {
		letter := string(l)
		members := index[letter]
		sortByKey(c, members, key)
		buckets = append(buckets, Bucket[T]{Letter: letter, Items: members})
	}
	return buckets
}

func sortByKey[T any](c *Classifier, items []T, key func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return c.compare(key(a), key(b))
	})
}
