package consulta

import (
	"remessa/internal/render"
)

// State is the orchestrator snapshot the dashboard renders. Only the detail
// view matching the active route is populated.
type State struct {
	Rota    Route  `json:"rota"`
	Ocupado bool   `json:"ocupado"`
	Erro    string `json:"erro,omitempty"`

	Resumo *render.ResumoView `json:"resumo,omitempty"`

	PessoaFisica   *render.PessoaFisicaView   `json:"pessoaFisica,omitempty"`
	PessoaJuridica *render.PessoaJuridicaView `json:"pessoaJuridica,omitempty"`
	Socio          *render.SocioView          `json:"socio,omitempty"`

	Erros []render.ErroView `json:"erros,omitempty"`
}

// Snapshot derives the display state from the current result slot. Each
// call projects a fresh view; the snapshot holds no independent state.
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	route := o.route
	busy := o.busy
	erroMsg := o.erroMsg
	result := o.result
	resumo := o.resumo
	o.mu.Unlock()

	state := State{
		Rota:    route,
		Ocupado: busy,
		Erro:    erroMsg,
	}
	if result == nil {
		return state
	}

	state.Resumo = render.BuildResumo(result, resumo.Processados, resumo.Enviados, resumo.Atualizados, resumo.Erros)
	state.Erros = render.BuildErros(result)

	switch route {
	case RoutePessoaFisica:
		state.PessoaFisica = render.BuildPessoaFisica(result)
	case RoutePessoaJuridica:
		state.PessoaJuridica = render.BuildPessoaJuridica(result)
	case RouteSocios:
		state.Socio = render.BuildSocio(result)
	}

	return state
}
