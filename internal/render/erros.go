package render

import (
	"sort"

	"remessa/internal/backend"
)

// ErroView is one row of the merged error list.
type ErroView struct {
	Documento string `json:"documento"`
	Mensagem  string `json:"mensagem"`
}

// BuildErros merges the two error sources into one flat list: the top-level
// explicit error array, then every unsuccessful entry inside every array
// under resultados. An empty slice means nothing failed and the panel is
// not shown.
func BuildErros(resp *backend.ApiResponse) []ErroView {
	if resp == nil || resp.Data == nil {
		return nil
	}

	var erros []ErroView

	for _, e := range resp.Data.Erros {
		erros = append(erros, ErroView{
			Documento: e.Cnpj,
			Mensagem:  e.Erro,
		})
	}

	// Result keys are walked in sorted order so the merged list is stable;
	// entries within each array keep the order received.
	keys := make([]string, 0, len(resp.Data.Resultados))
	for key := range resp.Data.Resultados {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, op := range resp.Data.Resultados[key] {
			if op.Sucesso {
				continue
			}
			erros = append(erros, ErroView{
				Documento: documentoDe(op),
				Mensagem:  mensagemDe(op),
			})
		}
	}

	return erros
}

func documentoDe(op backend.ResultadoOperacao) string {
	if op.Cnpj != "" {
		return op.Cnpj
	}
	if op.Cpf != "" {
		return op.Cpf
	}
	return "Documento não especificado"
}

func mensagemDe(op backend.ResultadoOperacao) string {
	if op.Mensagem != "" {
		return op.Mensagem
	}
	return "Erro não especificado"
}
