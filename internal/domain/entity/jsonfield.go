package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// IDList conjunto de IDs serializado como arreglo JSON.
// Acepta también un string con el arreglo codificado (formato de las filas SQLite antiguas).
type IDList []string

// MarshalJSON nunca emite null.
func (l IDList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *IDList) UnmarshalJSON(b []byte) error {
	raw, err := unwrapEncoded(b)
	if err != nil {
		return fmt.Errorf("lista de ids: %w", err)
	}
	var ids []string
	if raw != nil {
		if err := json.Unmarshal(raw, &ids); err != nil {
			return fmt.Errorf("lista de ids: %w", err)
		}
	}
	if ids == nil {
		ids = []string{}
	}
	*l = ids
	return nil
}

// Contains indica si id pertenece a la lista.
func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Without devuelve una copia sin id.
func (l IDList) Without(id string) IDList {
	out := make(IDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// CodeMap mapeo PersonID → código individual de licencia.
// Igual que IDList, acepta el objeto codificado como string.
type CodeMap map[string]string

// MarshalJSON nunca emite null.
func (m CodeMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(m))
}

func (m *CodeMap) UnmarshalJSON(b []byte) error {
	raw, err := unwrapEncoded(b)
	if err != nil {
		return fmt.Errorf("códigos individuales: %w", err)
	}
	codes := map[string]string{}
	if raw != nil {
		if err := json.Unmarshal(raw, &codes); err != nil {
			return fmt.Errorf("códigos individuales: %w", err)
		}
		if codes == nil {
			codes = map[string]string{}
		}
	}
	*m = codes
	return nil
}

// unwrapEncoded devuelve el JSON interno cuando b es un string; nil para null o string vacío.
func unwrapEncoded(b []byte) ([]byte, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	if b[0] != '"' {
		return b, nil
	}
	var encoded string
	if err := json.Unmarshal(b, &encoded); err != nil {
		return nil, err
	}
	inner := bytes.TrimSpace([]byte(encoded))
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return nil, nil
	}
	return inner, nil
}
