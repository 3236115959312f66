// Package fakedata produces Spanish-locale company names, product phrases
// and colors for the dataset's free-text columns.
package fakedata

import (
	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
)

// Generator implements contracts.TextSource on top of a shared random source.
// Drawing text consumes values from the same sequence as the rest of the run,
// so a fixed seed fixes the text too.
type Generator struct {
	rnd contracts.Random
}

// New creates a Generator drawing from rnd.
func New(rnd contracts.Random) *Generator {
	return &Generator{rnd: rnd}
}

// Company returns a company name such as "Hermanos Ruiz S.L." or "O'Donnell y Gil S.A.".
func (g *Generator) Company() string {
	switch g.rnd.IntN(3) {
	case 0:
		return g.pick(surnames) + " " + g.pick(companySuffixes)
	case 1:
		return g.pick(surnames) + " y " + g.pick(surnames) + " " + g.pick(companySuffixes)
	default:
		return g.pick(companyPrefixes) + " " + g.pick(surnames) + " " + g.pick(companySuffixes)
	}
}

// CatchPhrase returns a short product description.
func (g *Generator) CatchPhrase() string {
	return g.pick(phraseNouns) + " " + g.pick(phraseAdjectives) + " " + g.pick(phraseQualifiers)
}

// ColorName returns a color name.
func (g *Generator) ColorName() string {
	return g.pick(colors)
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rnd.IntN(len(pool))]
}
