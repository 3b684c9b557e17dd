package seq_test

import (
	"fmt"

	"github.com/katalvlaran/bioseq/alphabet"
	"github.com/katalvlaran/bioseq/seq"
)

// ExampleNew demonstrates validated construction and the round-trip
// textual form.
func ExampleNew() {
	s, err := seq.New("ATGGCC", alphabet.DNA)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s, s.Len())

	// Invalid input fails outright, naming symbol and position.
	_, err = seq.New("ATGU", alphabet.DNA)
	fmt.Println("error:", err)
	// Output:
	// ATGGCC 6
	// error: alphabet: invalid symbol: 'U' at position 4
}

// ExampleSequence_Slice extracts a 1-based closed interval: positions
// 2..4 of ATGGCC are T, G and G.
func ExampleSequence_Slice() {
	s, _ := seq.New("ATGGCC", alphabet.DNA)
	sub, _ := s.Slice(2, 4)
	fmt.Println(sub)
	// Output:
	// TGG
}

// ExampleSequence_ReverseComplement reverses the order and complements
// every base.
func ExampleSequence_ReverseComplement() {
	s, _ := seq.New("ATGGCC", alphabet.DNA)
	rc, _ := s.ReverseComplement()
	fmt.Println(rc)
	// Output:
	// GGCCAT
}

// ExampleSequence_Translate maps consecutive triplets through the
// standard genetic code.
func ExampleSequence_Translate() {
	s, _ := seq.New("ATGAAACGCATTAGCACCACC", alphabet.DNA)
	p, _ := s.Translate()
	fmt.Println(p, p.Alphabet())
	// Output:
	// MKRISTT Protein
}
