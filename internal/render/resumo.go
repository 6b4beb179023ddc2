package render

import "remessa/internal/backend"

// ResumoView restates the orchestrator's computed counters and the overall
// status; it performs no computation beyond formatting.
type ResumoView struct {
	Status                string `json:"status"`
	Mensagem              string `json:"mensagem"`
	TotalRegistros        int    `json:"totalRegistros"`
	DocumentosEnviados    int    `json:"documentosEnviados"`
	DocumentosAtualizados int    `json:"documentosAtualizados"`
	Erros                 int    `json:"erros"`
}

// BuildResumo formats the summary panel from a response and its already
// computed counters.
func BuildResumo(resp *backend.ApiResponse, processados, enviados, atualizados, erros int) *ResumoView {
	if resp == nil {
		return nil
	}

	status := "Erro"
	if resp.Success {
		status = "Sucesso"
	}

	return &ResumoView{
		Status:                status,
		Mensagem:              resp.Message,
		TotalRegistros:        processados,
		DocumentosEnviados:    enviados,
		DocumentosAtualizados: atualizados,
		Erros:                 erros,
	}
}
