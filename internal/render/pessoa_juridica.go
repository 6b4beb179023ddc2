package render

import "remessa/internal/backend"

// PessoaJuridicaView is the company detail panel.
type PessoaJuridicaView struct {
	SemRegistros bool `json:"semRegistros,omitempty"`

	Nome           string `json:"nome"`
	Cnpj           string `json:"cnpj"`
	CodigoCliente  string `json:"codigoCliente"`
	RamoAtividade  string `json:"ramoAtividade,omitempty"`

	ClienteDesde       string `json:"clienteDesde"`
	RenovacaoCadastral string `json:"renovacaoCadastral"`

	EnderecoComercial       *EnderecoView `json:"enderecoComercial,omitempty"`
	EnderecoCorrespondencia *EnderecoView `json:"enderecoCorrespondencia,omitempty"`

	Contatos []ContatoView     `json:"contatos,omitempty"`
	Socios   []SocioResumoView `json:"socios,omitempty"`

	Segmento            string `json:"segmento"`
	NivelRelacionamento string `json:"nivelRelacionamento"`
	IsencaoIof          string `json:"isencaoIof"`
	IsencaoIrf          string `json:"isencaoIrf"`
}

// BuildPessoaJuridica projects a company search response, preferring the
// updated record variant over the original when both are present.
func BuildPessoaJuridica(resp *backend.ApiResponse) *PessoaJuridicaView {
	if IsEmptyState(resp) {
		return &PessoaJuridicaView{SemRegistros: true}
	}

	res := resultados(resp)
	dados := preferido(res)
	if dados == nil {
		return nil
	}

	view := &PessoaJuridicaView{
		Nome:                    str(dados, "nomePessoa"),
		Cnpj:                    str(dados, "numeroCic"),
		CodigoCliente:           str(dados, "codigoCliente"),
		ClienteDesde:            dataBR(dados, "dataClienteDesde"),
		RenovacaoCadastral:      dataBR(dados, "dataRenovacaoCadastral"),
		EnderecoComercial:       buildEndereco(first(res, backend.ResultEndereco)),
		EnderecoCorrespondencia: buildEndereco(first(res, backend.ResultEnderecoPessoal)),
		Segmento:                str(dados, "segmento"),
		NivelRelacionamento:     simNao(boolean(dados, "indicadorNivelRelacionamento")),
		IsencaoIof:              simNao(boolean(dados, "indicadorIsencaoIof")),
		IsencaoIrf:              simNao(boolean(dados, "indicadorIsencaoIrf")),
	}

	if ramo := first(res, backend.ResultRamo); ramo != nil {
		view.RamoAtividade = str(ramo, "siglaAtividade")
	}
	if res != nil {
		view.Contatos = buildContatos(res[backend.ResultContatos])
		view.Socios = buildSocios(res[backend.ResultSocios])
	}

	return view
}
