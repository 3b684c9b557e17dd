// Package bioseq is your in-memory toolkit for building, validating,
// and analyzing biological sequences — from alphabet primitives to exact
// pattern matching and composition statistics.
//
// 🚀 What is bioseq?
//
//	A small, deterministic library that brings together:
//		• Alphabets: strict DNA, IUPAC nucleotide codes, amino acids
//		• Sequences: immutable, validated, 1-based addressing throughout
//		• Transforms: slicing, reverse-complement, translation
//		• Collections: ordered sets with dedup, uniquify, stable sort
//		• Matching: exact, overlap-counting search, scalar and vectorized
//		• Composition: letter counts and dense k-mer frequency tables
//
// ✨ Why choose bioseq?
//
//   - Domain-faithful – 1-based closed intervals, the addressing scheme
//     every biologist already uses
//   - Rock-solid guarantees – immutable values, explicit errors, no
//     silent correction of bad input
//   - Deterministic – index-stable vectorized results, reproducible
//     random generation
//
// Everything is organized under six subpackages:
//
//	alphabet/ — legal symbol sets, validation, complement relation
//	seq/      — the immutable Sequence value and its transforms
//	seqset/   — ordered, duplicate-permitting sequence collections
//	match/    — exact pattern matching (Count/Locate, VCount/VLocate)
//	freq/     — letter and k-mer frequency analysis
//	seqgen/   — reproducible random sequence generation for tests & benches
//
// Quick taste:
//
//	s, _ := seq.New("ATGGCC", alphabet.DNA)
//	rc, _ := s.ReverseComplement() // GGCCAT
//	n, _ := match.Count("GC", s)   // 1
//
//	go get github.com/katalvlaran/bioseq
package bioseq
