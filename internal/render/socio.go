package render

import "remessa/internal/backend"

// SocioView is the partner/shareholder detail panel. The source had
// divergent drafts of this panel; this is the defensive superset.
type SocioView struct {
	SemRegistros bool `json:"semRegistros,omitempty"`

	Nome          string `json:"nome"`
	Cpf           string `json:"cpf"`
	CodigoCliente string `json:"codigoCliente"`
	Localizacao   string `json:"localizacao"`

	ClienteDesde       string `json:"clienteDesde"`
	RenovacaoCadastral string `json:"renovacaoCadastral"`

	Contatos []ContatoView `json:"contatos,omitempty"`

	Mae     *ParenteView `json:"mae,omitempty"`
	Pai     *ParenteView `json:"pai,omitempty"`
	Conjuge *ParenteView `json:"conjuge,omitempty"`

	EnderecoEmpresa *EnderecoView `json:"enderecoEmpresa,omitempty"`

	Segmento            string `json:"segmento"`
	NivelRelacionamento string `json:"nivelRelacionamento"`
	IsencaoIof          string `json:"isencaoIof"`
	IsencaoIrf          string `json:"isencaoIrf"`
}

// BuildSocio projects a partner search response, preferring the updated
// record variant over the original when both are present.
func BuildSocio(resp *backend.ApiResponse) *SocioView {
	if IsEmptyState(resp) {
		return &SocioView{SemRegistros: true}
	}

	res := resultados(resp)
	dados := preferido(res)
	if dados == nil {
		return nil
	}

	view := &SocioView{
		Nome:                str(dados, "nomePessoa"),
		Cpf:                 str(dados, "numeroCic"),
		CodigoCliente:       str(dados, "codigoCliente"),
		Localizacao:         str(dados, "descricaoLocalizacao"),
		ClienteDesde:        dataBR(dados, "dataClienteDesde"),
		RenovacaoCadastral:  dataBR(dados, "dataRenovacaoCadastral"),
		Mae:                 buildParente(first(res, backend.ResultMae)),
		Pai:                 buildParente(first(res, backend.ResultPai)),
		Conjuge:             buildParente(first(res, backend.ResultConjuge)),
		EnderecoEmpresa:     buildEndereco(first(res, backend.ResultEnderecoEmpresa)),
		Segmento:            str(dados, "segmento"),
		NivelRelacionamento: simNao(boolean(dados, "indicadorNivelRelacionamento")),
		IsencaoIof:          simNao(boolean(dados, "indicadorIsencaoIof")),
		IsencaoIrf:          simNao(boolean(dados, "indicadorIsencaoIrf")),
	}

	if res != nil {
		view.Contatos = buildContatos(res[backend.ResultContatos])
	}

	return view
}
