// Package render projects the backend's loosely typed responses into the
// structured views the dashboard displays. All builders are pure functions
// of the response: same input, same view, no state, no I/O.
package render

import (
	"remessa/internal/backend"
)

// MessageNoRecords is the sentinel message that turns an unsuccessful
// response into a friendly empty state instead of an error.
const MessageNoRecords = "Nenhum registro encontrado"

// IsEmptyState reports the "no records found, unsuccessful" sentinel. Every
// builder checks this before touching any nested optional field.
func IsEmptyState(resp *backend.ApiResponse) bool {
	return resp != nil && !resp.Success && resp.Message == MessageNoRecords
}

// EnderecoView is a postal address sub-object.
type EnderecoView struct {
	TipoLogradouro string `json:"tipoLogradouro,omitempty"`
	Logradouro     string `json:"logradouro"`
	Numero         string `json:"numero"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	UF             string `json:"uf"`
	Cep            string `json:"cep"`
	DDD            string `json:"ddd"`
	Telefone       string `json:"telefone"`
}

// ParenteView is a family member sub-object.
type ParenteView struct {
	Nome string `json:"nome"`
	Cpf  string `json:"cpf,omitempty"`
	// PEP renders the politically-exposed-person flag as Sim/Não.
	PEP string `json:"pep"`
}

// ContatoView is one contact entry, discriminated into e-mail or phone.
type ContatoView struct {
	Tipo  string `json:"tipo"`
	Valor string `json:"valor"`
}

// SocioResumoView is one partner line inside the company view.
type SocioResumoView struct {
	Nome               string `json:"nome"`
	Cpf                string `json:"cpf"`
	Participacao       string `json:"participacao"`
	RepresentanteLegal string `json:"representanteLegal"`
}

func buildEndereco(m map[string]any) *EnderecoView {
	if m == nil {
		return nil
	}
	return &EnderecoView{
		TipoLogradouro: str(m, "siglaTipoLogradouro"),
		Logradouro:     str(m, "nomeLogradouro"),
		Numero:         str(m, "numeroEndereco"),
		Bairro:         str(m, "nomeBairro"),
		Cidade:         str(m, "nomeCidade"),
		UF:             str(m, "siglaUf"),
		Cep:            str(m, "codigoCep"),
		DDD:            str(m, "numeroDdd"),
		Telefone:       str(m, "numeroTelefone"),
	}
}

func buildParente(m map[string]any) *ParenteView {
	if m == nil {
		return nil
	}
	return &ParenteView{
		Nome: str(m, "nomeParente"),
		Cpf:  str(m, "cpfParente"),
		PEP:  simNao(boolean(m, "parentePoliticamenteExposto")),
	}
}

// buildContatos keeps the order received; the type discriminator is
// codigoTipoContato: "EML" means e-mail, anything else means phone.
func buildContatos(ops []backend.ResultadoOperacao) []ContatoView {
	if len(ops) == 0 {
		return nil
	}
	contatos := make([]ContatoView, 0, len(ops))
	for _, op := range ops {
		data := op.ResponseData
		if data == nil {
			continue
		}
		if str(data, "codigoTipoContato") == "EML" {
			contatos = append(contatos, ContatoView{
				Tipo:  "E-mail",
				Valor: str(data, "descricaoEmail"),
			})
			continue
		}
		contatos = append(contatos, ContatoView{
			Tipo:  "Telefone",
			Valor: str(data, "telefoneCompletoDescription"),
		})
	}
	return contatos
}

func buildSocios(ops []backend.ResultadoOperacao) []SocioResumoView {
	if len(ops) == 0 {
		return nil
	}
	socios := make([]SocioResumoView, 0, len(ops))
	for _, op := range ops {
		data := op.ResponseData
		if data == nil {
			continue
		}
		socios = append(socios, SocioResumoView{
			Nome:               str(data, "nomePessoa"),
			Cpf:                str(data, "numeroCicSocio"),
			Participacao:       str(data, "percentualParticipacaoCapitalTotal"),
			RepresentanteLegal: simNao(boolean(data, "representanteLegal")),
		})
	}
	return socios
}
