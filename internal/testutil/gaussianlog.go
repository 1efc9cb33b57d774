package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// State is one excited state written by [GaussianLog].
type State struct {
	Energy   float64 // eV
	Strength float64
}

// ExcitedStateLine formats an excited-state line the way Gaussian 09 prints
// it. n is the 1-based state number.
func ExcitedStateLine(n int, s State) string {
	return fmt.Sprintf(" Excited State %3d:      Singlet-A    %8.4f eV  %7.2f nm  f=%.4f  <S**2>=0.000",
		n, s.Energy, 1239.84/s.Energy, s.Strength)
}

// GaussianLog returns a short TDDFT log body containing the given states
// surrounded by unrelated output.
func GaussianLog(states ...State) string {
	var b strings.Builder
	b.WriteString(" Entering Gaussian System, Link 0=g09\n")
	b.WriteString(" #p td(nstates=10) b3lyp/6-31g(d)\n")
	b.WriteString(" SCF Done:  E(RB3LYP) =  -230.123456789     A.U. after   12 cycles\n")
	b.WriteString(" Excitation energies and oscillator strengths:\n")
	b.WriteString("\n")
	for i, s := range states {
		b.WriteString(ExcitedStateLine(i+1, s))
		b.WriteString("\n")
		b.WriteString("      20 -> 23         0.69812\n")
		b.WriteString("\n")
	}
	b.WriteString(" SavETr:  write IOETrn=   770 NScale= 10 NData=  16 NLR=1 NState=   10 LETran=     190.\n")
	b.WriteString(" Normal termination of Gaussian 09.\n")
	return b.String()
}

// WriteFile writes content to name inside t.TempDir and returns the path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
