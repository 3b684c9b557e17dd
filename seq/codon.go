package seq

import (
	"fmt"

	"github.com/katalvlaran/bioseq/alphabet"
)

// Standard genetic code: DNA codon → amino acid (single letter),
// stop codons → '*'.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// unknownResidue marks codons that cannot be resolved through the
// genetic code: any triplet containing an ambiguity code, wildcard, or
// gap symbol.
const unknownResidue = 'X'

// Translate partitions the sequence into consecutive non-overlapping
// triplets starting at position 1 and maps each through the standard
// genetic code, producing a Protein sequence. Stop codons become '*',
// codons containing any non-core symbol become 'X'.
//
// A trailing partial triplet is rejected: a length not divisible by 3
// fails with ErrPartialCodon rather than being silently truncated.
// Complexity: O(n)
func (s Sequence) Translate() (Sequence, error) {
	if s.alpha == nil {
		return Sequence{}, ErrNilAlphabet
	}
	if !s.alpha.HasCodonTable() {
		return Sequence{}, fmt.Errorf("%w (%s)", ErrNoCodonTable, s.alpha)
	}
	if len(s.syms)%3 != 0 {
		return Sequence{}, fmt.Errorf("%w: length %d", ErrPartialCodon, len(s.syms))
	}

	out := make([]byte, 0, len(s.syms)/3)
	for i := 0; i < len(s.syms); i += 3 {
		aa, ok := codonTable[string(s.syms[i:i+3])]
		if !ok {
			aa = unknownResidue
		}
		out = append(out, aa)
	}

	return Sequence{syms: out, alpha: alphabet.Protein}, nil
}
