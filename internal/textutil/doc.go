// Package textutil provides text normalization, tokenization, and
// lightweight set-based similarity primitives shared by the matching
// engines. Everything here is pure and allocation-light; the heavier
// TF-IDF machinery lives in package tfidf.
package textutil
