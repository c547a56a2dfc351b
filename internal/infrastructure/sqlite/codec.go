package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp inválido %q", s)
}

// nullText guarda "" como NULL en columnas opcionales.
func nullText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullID(id *string) sql.NullString {
	if id == nil || *id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *id, Valid: true}
}

func idPtr(ns sql.NullString) *string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	s := ns.String
	return &s
}

// encodeJSON serializa listas y mapas a texto; solo ocurre en este adaptador.
func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeJSON(raw sql.NullString, dst any) error {
	if !raw.Valid || raw.String == "" {
		return json.Unmarshal([]byte("null"), dst)
	}
	return json.Unmarshal([]byte(raw.String), dst)
}
