// vybium-fs-grind grinds a proof-of-work witness for a transcript seeded
// with the given scalars and reports the witness and search time.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	vybiumfiatshamir "github.com/vybium/vybium-fiat-shamir/pkg/vybium-fiat-shamir"
)

func main() {
	bits := flag.Int("bits", 16, "grinding difficulty in bits (1..63)")
	seed := flag.String("seed", "1,2,3", "comma-separated base scalars committed before grinding")
	verify := flag.Bool("verify", true, "replay the proof on a verifier afterwards")
	flag.Parse()

	scalars, err := parseScalars(*seed)
	if err != nil {
		fatal(fmt.Sprintf("invalid -seed: %v", err))
	}

	perm := vybiumfiatshamir.NewPoseidon2()
	prover := vybiumfiatshamir.NewProver(perm, false)
	prover.AddBaseScalars(scalars)

	start := time.Now()
	prover.PowGrinding(*bits)
	elapsed := time.Since(start)

	proof := prover.Proof()
	witness := proof.ProofData[len(proof.ProofData)-1]
	fmt.Printf("witness:    %d\n", witness.Value())
	fmt.Printf("difficulty: %d bits\n", *bits)
	fmt.Printf("search:     %s\n", elapsed)
	fmt.Printf("proof size: %d field elements\n", proof.ProofSize)

	if *verify {
		verifier := vybiumfiatshamir.NewVerifier(perm, proof)
		if _, err := verifier.NextBaseScalarsVec(len(scalars)); err != nil {
			fatal(fmt.Sprintf("replay failed: %v", err))
		}
		if err := verifier.CheckPowGrinding(*bits); err != nil {
			fatal(fmt.Sprintf("witness rejected: %v", err))
		}
		fmt.Println("verified:   ok")
	}
}

func parseScalars(s string) ([]field.Element, error) {
	parts := strings.Split(s, ",")
	scalars := make([]field.Element, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		scalars = append(scalars, field.New(v))
	}
	return scalars, nil
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "vybium-fs-grind: %s\n", msg)
	os.Exit(1)
}
