// Package extract reads excited-state sticks from Gaussian TDHF/TDDFT log
// output.
//
// A record is any line that begins with the literal " Excited State "
// (leading space included). Gaussian prints such a line as
//
//	Excited State   1:      Singlet-A      3.5000 eV  354.24 nm  f=0.1234  <S**2>=0.000
//
// After splitting on whitespace, token 4 is the excitation energy in eV and
// token 8 is the oscillator strength behind a two-character "f=" prefix.
// These positions are the format of the upstream program and are applied
// exactly; a line that carries the marker but does not fit them fails the
// whole extraction with [ErrMalformedRecord].
package extract
