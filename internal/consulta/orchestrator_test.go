package consulta

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"remessa/internal/backend"
	"remessa/internal/consulta/mocks"
	dErrors "remessa/pkg/domain-errors"
)

//go:generate mockgen -source=orchestrator.go -destination=mocks/api-mocks.go -package=mocks API

func TestParseRoute(t *testing.T) {
	r, err := ParseRoute("pessoa-fisica")
	require.NoError(t, err)
	assert.Equal(t, RoutePessoaFisica, r)

	r, err = ParseRoute("")
	require.NoError(t, err)
	assert.Equal(t, RouteNone, r)

	_, err = ParseRoute("empresas")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestSearch_RequiresRouteAndDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	o := New(api)

	err := o.Search(context.Background(), backend.SearchParams{Documento: "123"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	o.SelectRoute(RoutePessoaFisica)
	err = o.Search(context.Background(), backend.SearchParams{Documento: "   "})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestSearch_Success_StoresResultAndCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	resp := &backend.ApiResponse{
		Success: true,
		Message: "Dados enviados com sucesso",
		Data: &backend.ResponseData{
			CpfEnviados: []string{"11122233344"},
			Resultados: map[string][]backend.ResultadoOperacao{
				backend.ResultPessoa: {{
					Sucesso: true,
					Cpf:     "11122233344",
					ResponseData: map[string]any{
						"nomePessoa": "Maria da Silva",
					},
				}},
			},
		},
	}

	api.EXPECT().
		SearchPessoaFisica(gomock.Any(), backend.SearchParams{Documento: "11122233344"}).
		Return(resp, nil)

	o := New(api)
	o.SelectRoute(RoutePessoaFisica)

	require.NoError(t, o.Search(context.Background(), backend.SearchParams{Documento: "11122233344"}))

	state := o.Snapshot()
	assert.Equal(t, RoutePessoaFisica, state.Rota)
	assert.False(t, state.Ocupado)
	assert.Empty(t, state.Erro)

	require.NotNil(t, state.Resumo)
	assert.Equal(t, "Sucesso", state.Resumo.Status)
	assert.Equal(t, 1, state.Resumo.TotalRegistros)
	assert.Equal(t, 1, state.Resumo.DocumentosEnviados)
	assert.Equal(t, 0, state.Resumo.DocumentosAtualizados)
	assert.Equal(t, 0, state.Resumo.Erros)

	require.NotNil(t, state.PessoaFisica)
	assert.Equal(t, "Maria da Silva", state.PessoaFisica.Nome)
	assert.Nil(t, state.PessoaJuridica)
	assert.Nil(t, state.Socio)
}

func TestSearch_DuplicateMessage_ZeroesCountersAndViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	for _, message := range []string{
		"Registro JÁ EXISTE na base",
		"record Already Exists upstream",
	} {
		resp := &backend.ApiResponse{
			Success: true,
			Message: message,
			Data: &backend.ResponseData{
				CnpjEnviados: []string{"00111222000133"},
			},
		}
		api.EXPECT().
			SearchPessoaJuridica(gomock.Any(), gomock.Any()).
			Return(resp, nil)

		o := New(api)
		o.SelectRoute(RoutePessoaJuridica)
		require.NoError(t, o.Search(context.Background(), backend.SearchParams{Documento: "00111222000133"}))

		state := o.Snapshot()
		assert.Equal(t, message, state.Erro)
		assert.Nil(t, state.Resumo)
		assert.Nil(t, state.PessoaJuridica)
		assert.Nil(t, state.Erros)
	}
}

func TestSearch_NotFound_RendersEmptyState(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	api.EXPECT().
		SearchSocios(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "Nenhum registro encontrado"))

	o := New(api)
	o.SelectRoute(RouteSocios)
	require.NoError(t, o.Search(context.Background(), backend.SearchParams{Documento: "Maria"}))

	state := o.Snapshot()
	assert.Empty(t, state.Erro)
	require.NotNil(t, state.Socio)
	assert.True(t, state.Socio.SemRegistros)
}

func TestSearch_BackendError_SetsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	api.EXPECT().
		SearchPessoaFisica(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeTimeout, "tempo de resposta do servidor excedido"))

	o := New(api)
	o.SelectRoute(RoutePessoaFisica)
	require.NoError(t, o.Search(context.Background(), backend.SearchParams{Documento: "123"}))

	state := o.Snapshot()
	assert.Equal(t, "tempo de resposta do servidor excedido", state.Erro)
	assert.Nil(t, state.PessoaFisica)
}

func TestSearch_BusyGate_RejectsOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	api.EXPECT().
		SearchPessoaFisica(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p backend.SearchParams) (*backend.ApiResponse, error) {
			close(started)
			<-release
			return &backend.ApiResponse{Success: true}, nil
		})

	o := New(api)
	o.SelectRoute(RoutePessoaFisica)

	done := make(chan error, 1)
	go func() {
		done <- o.Search(context.Background(), backend.SearchParams{Documento: "123"})
	}()
	<-started

	err := o.Search(context.Background(), backend.SearchParams{Documento: "456"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, o.Snapshot().Ocupado)
}

func TestSearch_RouteSwitchDiscardsLateResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	api.EXPECT().
		SearchPessoaFisica(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p backend.SearchParams) (*backend.ApiResponse, error) {
			close(started)
			<-release
			return &backend.ApiResponse{
				Success: true,
				Data:    &backend.ResponseData{CpfEnviados: []string{"1"}},
			}, nil
		})

	o := New(api)
	o.SelectRoute(RoutePessoaFisica)

	done := make(chan error, 1)
	go func() {
		done <- o.Search(context.Background(), backend.SearchParams{Documento: "123"})
	}()
	<-started

	o.SelectRoute(RouteSocios)
	close(release)
	require.NoError(t, <-done)

	state := o.Snapshot()
	assert.Equal(t, RouteSocios, state.Rota)
	assert.False(t, state.Ocupado)
	assert.Nil(t, state.Resumo)
	assert.Nil(t, state.PessoaFisica)
	assert.Nil(t, state.Socio)
}

func TestEnviar_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	resp := &backend.ApiResponse{
		Success: true,
		Message: "enviado",
		Data:    &backend.ResponseData{CnpjEnviados: []string{"00111222000133"}},
	}
	api.EXPECT().
		EnviarDados(gomock.Any(), backend.SearchParams{Documento: "00111222000133", Status: "ativo"}).
		Return(resp, nil)

	o := New(api)
	o.SelectRoute(RoutePessoaJuridica)

	require.NoError(t, o.Enviar(context.Background(), backend.SearchParams{Documento: "00111222000133", Status: "ativo"}))

	state := o.Snapshot()
	assert.Empty(t, state.Erro)
	require.NotNil(t, state.Resumo)
	assert.Equal(t, 1, state.Resumo.DocumentosEnviados)
}

func TestEnviar_FallsBackToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	p := backend.SearchParams{Documento: "00111222000133"}
	api.EXPECT().
		EnviarDados(gomock.Any(), p).
		Return(&backend.ApiResponse{Success: false, Message: "registro já existe"}, nil)
	api.EXPECT().
		AtualizarDados(gomock.Any(), p).
		Return(&backend.ApiResponse{
			Success: true,
			Message: "atualizado",
			Data:    &backend.ResponseData{CnpjAtualizados: []string{"00111222000133"}},
		}, nil)

	o := New(api)
	o.SelectRoute(RoutePessoaJuridica)

	require.NoError(t, o.Enviar(context.Background(), p))

	state := o.Snapshot()
	assert.Empty(t, state.Erro)
	require.NotNil(t, state.Resumo)
	assert.Equal(t, 0, state.Resumo.DocumentosEnviados)
	assert.Equal(t, 1, state.Resumo.DocumentosAtualizados)
}

func TestEnviar_BothFail_ReportsUpdateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	p := backend.SearchParams{Documento: "00111222000133"}
	api.EXPECT().
		EnviarDados(gomock.Any(), p).
		Return(nil, errors.New("falha de comunicação com o servidor"))
	api.EXPECT().
		AtualizarDados(gomock.Any(), p).
		Return(&backend.ApiResponse{Success: false, Message: "documento inválido"}, nil)

	o := New(api)
	require.NoError(t, o.Enviar(context.Background(), p))

	state := o.Snapshot()
	assert.Equal(t, "documento inválido", state.Erro)
	assert.Nil(t, state.Resumo)
}

func TestEnviar_EmptyFailureMessageGetsGenericText(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	p := backend.SearchParams{Documento: "123"}
	api.EXPECT().EnviarDados(gomock.Any(), p).Return(&backend.ApiResponse{Success: false}, nil)
	api.EXPECT().AtualizarDados(gomock.Any(), p).Return(&backend.ApiResponse{Success: false}, nil)

	o := New(api)
	require.NoError(t, o.Enviar(context.Background(), p))

	assert.Equal(t, genericErrorMessage, o.Snapshot().Erro)
}

func TestComputeResumo(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Equal(t, Resumo{}, ComputeResumo(nil))
	})

	t.Run("explicit processed count wins", func(t *testing.T) {
		r := ComputeResumo(&backend.ApiResponse{Data: &backend.ResponseData{
			RegistrosProcessados: 7,
			Resultados: map[string][]backend.ResultadoOperacao{
				backend.ResultPessoa: {{Sucesso: true}},
			},
		}})
		assert.Equal(t, 7, r.Processados)
	})

	t.Run("falls back to result key count", func(t *testing.T) {
		r := ComputeResumo(&backend.ApiResponse{Data: &backend.ResponseData{
			Resultados: map[string][]backend.ResultadoOperacao{
				backend.ResultPessoa:   {{Sucesso: true}},
				backend.ResultEndereco: {{Sucesso: true}},
			},
		}})
		assert.Equal(t, 2, r.Processados)
	})

	t.Run("present but empty array wins over later ones", func(t *testing.T) {
		r := ComputeResumo(&backend.ApiResponse{Data: &backend.ResponseData{
			CnpjEnviados:       []string{},
			DocumentosEnviados: []string{"1", "2"},
		}})
		assert.Equal(t, 0, r.Enviados)
	})

	t.Run("errors combine explicit list and failed entries", func(t *testing.T) {
		r := ComputeResumo(&backend.ApiResponse{Data: &backend.ResponseData{
			Erros: []backend.ErroRegistro{{Cnpj: "1", Erro: "x"}},
			Resultados: map[string][]backend.ResultadoOperacao{
				backend.ResultPessoa:   {{Sucesso: false}},
				backend.ResultContatos: {{Sucesso: true}, {Sucesso: false}},
			},
		}})
		assert.Equal(t, 3, r.Erros)
	})
}
