package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/girochef/girochef-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Burger Lab":             "burger_lab",
		"Pão de Açúcar Ltda.":    "pao_de_acucar_ltda",
		"  Sushi   Zen  ":        "sushi_zen",
		"Lista de compras 04/01": "lista_de_compras_04_01",
		"???":                    "sin_nombre",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "entrada %q", in)
	}
}
