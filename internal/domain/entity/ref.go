package entity

import (
	"bytes"
	"encoding/json"
)

// Ref referencia a otra entidad. El backend la envía como id en texto o como objeto poblado.
type Ref struct {
	ID   string
	Name string
}

// IsZero indica referencia vacía.
func (r Ref) IsZero() bool {
	return r.ID == "" && r.Name == ""
}

// Label nombre si se conoce, si no el id.
func (r Ref) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// UnmarshalJSON acepta "id", {"_id": "...", "name": "..."} o null.
func (r *Ref) UnmarshalJSON(b []byte) error {
	*r = Ref{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.ID = obj.MongoID
	if r.ID == "" {
		r.ID = obj.ID
	}
	r.Name = obj.Name
	return nil
}

// MarshalJSON emite solo el id, como lo espera el backend al escribir.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
