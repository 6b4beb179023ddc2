package render

import "remessa/internal/backend"

// PessoaFisicaView is the person detail panel.
type PessoaFisicaView struct {
	SemRegistros bool `json:"semRegistros,omitempty"`

	Nome          string `json:"nome"`
	Cpf           string `json:"cpf"`
	CodigoCliente string `json:"codigoCliente"`
	Localizacao   string `json:"localizacao"`

	ClienteDesde       string `json:"clienteDesde"`
	RenovacaoCadastral string `json:"renovacaoCadastral"`

	Endereco        *EnderecoView `json:"endereco,omitempty"`
	EnderecoPessoal *EnderecoView `json:"enderecoPessoal,omitempty"`

	Mae     *ParenteView `json:"mae,omitempty"`
	Pai     *ParenteView `json:"pai,omitempty"`
	Conjuge *ParenteView `json:"conjuge,omitempty"`

	Segmento            string `json:"segmento"`
	NivelRelacionamento string `json:"nivelRelacionamento"`
	IsencaoIof          string `json:"isencaoIof"`
	IsencaoIrf          string `json:"isencaoIrf"`
}

// BuildPessoaFisica projects a person search response. Returns the fixed
// empty-state view for the no-records sentinel, nil when there is nothing to
// show, and a populated view otherwise.
func BuildPessoaFisica(resp *backend.ApiResponse) *PessoaFisicaView {
	if IsEmptyState(resp) {
		return &PessoaFisicaView{SemRegistros: true}
	}

	res := resultados(resp)
	pessoa := preferido(res)
	if pessoa == nil {
		return nil
	}

	return &PessoaFisicaView{
		Nome:                str(pessoa, "nomePessoa"),
		Cpf:                 str(pessoa, "numeroCic"),
		CodigoCliente:       str(pessoa, "codigoCliente"),
		Localizacao:         str(pessoa, "descricaoLocalizacao"),
		ClienteDesde:        dataBR(pessoa, "dataClienteDesde"),
		RenovacaoCadastral:  dataBR(pessoa, "dataRenovacaoCadastral"),
		Endereco:            buildEndereco(first(res, backend.ResultEndereco)),
		EnderecoPessoal:     buildEndereco(first(res, backend.ResultEnderecoPessoal)),
		Mae:                 buildParente(first(res, backend.ResultMae)),
		Pai:                 buildParente(first(res, backend.ResultPai)),
		Conjuge:             buildParente(first(res, backend.ResultConjuge)),
		Segmento:            str(pessoa, "segmento"),
		NivelRelacionamento: simNao(boolean(pessoa, "indicadorNivelRelacionamento")),
		IsencaoIof:          simNao(boolean(pessoa, "indicadorIsencaoIof")),
		IsencaoIrf:          simNao(boolean(pessoa, "indicadorIsencaoIrf")),
	}
}
