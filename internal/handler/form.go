package handler

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/gorilla/schema"
)

var errInvalidNumber = model.NewValidationError("Valeur numérique invalide")

var boolPtrType = reflect.TypeOf((*bool)(nil))

// formDecoder binds form keys to the json names of the Input structs.
// The last submitted value wins.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(false, func(value string) reflect.Value {
		return reflect.ValueOf(isChecked(value))
	})
	// Blank numbers decode as 0, which services treat as "not supplied".
	d.RegisterConverter(0, func(value string) reflect.Value {
		value = strings.TrimSpace(value)
		if value == "" {
			return reflect.ValueOf(0)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(n)
	})
	return d
}

// bindForm decodes form into the struct dst points to. Keys absent from
// the form leave pointer fields nil, except *bool checkboxes which an
// unticked box never submits: those are set to false.
func bindForm(form url.Values, dst interface{}) error {
	if err := formDecoder.Decode(dst, form); err != nil {
		return errInvalidNumber
	}

	v := reflect.ValueOf(dst).Elem()
	for i := 0; i < v.NumField(); i++ {
		if f := v.Field(i); f.Type() == boolPtrType && f.IsNil() {
			f.Set(reflect.ValueOf(new(bool)))
		}
	}
	return nil
}

// isChecked reports whether a checkbox value means "on". A hidden field
// rendered before the checkbox may submit "false" alongside it.
func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}

// decodeReorder reads the ordered ids from {"ids": [...]} or from
// repeated or comma-separated "ids" form values.
func decodeReorder(w http.ResponseWriter, r *http.Request) ([]int64, error) {
	if isJSON(r) {
		var req model.ReorderRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return nil, err
		}
		return req.IDs, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return nil, model.NewValidationError("Formulaire invalide")
	}

	var ids []int64
	for _, value := range r.PostForm["ids"] {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, errInvalidID
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
