package backend

// SearchParams carries the user input of a search or submit action.
// Status is optional and normalized to lowercase before it reaches the wire.
type SearchParams struct {
	Documento string `json:"documento"`
	Status    string `json:"status,omitempty"`
}

// ErroRegistro is one entry of the backend's top-level error list.
type ErroRegistro struct {
	Cnpj string `json:"cnpj"`
	Erro string `json:"erro"`
}

// ResultadoOperacao is a single per-sub-entity outcome record. ResponseData
// is entity-type dependent and arrives unvalidated; the render layer owns
// the defensive projection, so it stays an untyped map here.
type ResultadoOperacao struct {
	Sucesso      bool           `json:"sucesso"`
	Mensagem     string         `json:"mensagem,omitempty"`
	Cnpj         string         `json:"cnpj,omitempty"`
	Cpf          string         `json:"cpf,omitempty"`
	ResponseData map[string]any `json:"responseData,omitempty"`
}

// ResponseData is the data envelope of an ApiResponse.
type ResponseData struct {
	RegistrosProcessados   int                            `json:"registrosProcessados,omitempty"`
	CnpjEnviados           []string                       `json:"cnpjEnviados,omitempty"`
	CnpjAtualizados        []string                       `json:"cnpjAtualizados,omitempty"`
	CpfEnviados            []string                       `json:"cpfEnviados,omitempty"`
	CpfAtualizados         []string                       `json:"cpfAtualizados,omitempty"`
	DocumentosEnviados     []string                       `json:"documentosEnviados,omitempty"`
	DocumentosAtualizados  []string                       `json:"documentosAtualizados,omitempty"`
	Erros                  []ErroRegistro                 `json:"erros,omitempty"`
	Resultados             map[string][]ResultadoOperacao `json:"resultados,omitempty"`
}

// ApiResponse is the sole data contract with the registration backend.
type ApiResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *ResponseData `json:"data,omitempty"`
}

// Result keys used by the renderers. The backend may send others; renderers
// only project the ones they know.
const (
	ResultPessoa           = "pessoa"
	ResultPessoaAtualizada = "pessoaAtualizada"
	ResultEndereco         = "endereco"
	ResultEnderecoPessoal  = "enderecoPessoal"
	ResultEnderecoEmpresa  = "enderecoEmpresa"
	ResultMae              = "mae"
	ResultPai              = "pai"
	ResultConjuge          = "conjuge"
	ResultContatos         = "contatos"
	ResultSocios           = "socios"
	ResultRamo             = "ramo"
)
