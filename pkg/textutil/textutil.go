package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// FoldAccents remove diacríticos ("Orçamento" -> "Orcamento").
func FoldAccents(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeCode padroniza códigos de peça, placas e afins: sem acentos,
// maiúsculas, sem espaços nas pontas.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(FoldAccents(s)))
}
