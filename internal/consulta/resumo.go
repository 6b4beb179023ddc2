package consulta

import "remessa/internal/backend"

// Resumo holds the per-route summary counters derived from a response.
type Resumo struct {
	Processados int
	Enviados    int
	Atualizados int
	Erros       int
}

// ComputeResumo derives the summary counters from a backend response.
//
// Processados: the explicit field when set, otherwise the number of distinct
// result keys. Enviados/Atualizados: the first present array wins, trying
// the CNPJ-named field, then the CPF-named one, then the generic documents
// one; an array that is present but empty still wins with zero. Erros: every
// unsuccessful entry across all result arrays plus the explicit error list.
func ComputeResumo(resp *backend.ApiResponse) Resumo {
	if resp == nil || resp.Data == nil {
		return Resumo{}
	}
	data := resp.Data

	r := Resumo{
		Processados: data.RegistrosProcessados,
		Enviados:    firstPresent(data.CnpjEnviados, data.CpfEnviados, data.DocumentosEnviados),
		Atualizados: firstPresent(data.CnpjAtualizados, data.CpfAtualizados, data.DocumentosAtualizados),
		Erros:       len(data.Erros),
	}

	if r.Processados == 0 {
		r.Processados = len(data.Resultados)
	}

	for _, ops := range data.Resultados {
		for _, op := range ops {
			if !op.Sucesso {
				r.Erros++
			}
		}
	}

	return r
}

func firstPresent(lists ...[]string) int {
	for _, l := range lists {
		if l != nil {
			return len(l)
		}
	}
	return 0
}
