package render

import (
	"fmt"
	"strconv"
	"time"

	"remessa/internal/backend"
)

// The backend's responseData payloads are untyped and entity-dependent.
// Every accessor here tolerates absence or a wrong type at any level and
// degrades to a zero value; renderers never raise.

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	return asString(m[key])
}

func boolean(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

// simNao renders a boolean flag the way the dashboard displays it.
func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// dateLayouts are tried in order when formatting backend dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// dataBR formats a backend date value as dd/mm/yyyy. Unparseable or missing
// values come back unchanged (possibly empty) rather than erroring.
func dataBR(m map[string]any, key string) string {
	raw := str(m, key)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

// first returns the responseData of the first entry under the given result
// key, or nil when the key or entry is absent.
func first(resultados map[string][]backend.ResultadoOperacao, key string) map[string]any {
	if resultados == nil {
		return nil
	}
	ops := resultados[key]
	if len(ops) == 0 {
		return nil
	}
	return ops[0].ResponseData
}

// preferido returns the primary record, preferring the updated variant over
// the original one when both are present.
func preferido(resultados map[string][]backend.ResultadoOperacao) map[string]any {
	if atualizada := first(resultados, backend.ResultPessoaAtualizada); atualizada != nil {
		return atualizada
	}
	return first(resultados, backend.ResultPessoa)
}

// resultados extracts the result map from a response, nil-safe at each hop.
func resultados(resp *backend.ApiResponse) map[string][]backend.ResultadoOperacao {
	if resp == nil || resp.Data == nil {
		return nil
	}
	return resp.Data.Resultados
}
