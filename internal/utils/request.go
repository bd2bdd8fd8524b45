package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

// DecodeRequest populates a request DTO from the JSON body and the query
// string. Either source is a valid way to submit a field; when both carry a
// value the body wins. An absent or empty body is not an error, since the
// fields may arrive entirely via the query string.
func DecodeRequest(r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.Is(err, io.EOF):
			// Empty body; fields may still come from the query string.

		case err.Error() == "http: request body too large":
			return NewBadRequestError(constants.MsgRequestBodyTooLarge)

		case errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxError):
			return NewBadRequestError(constants.MsgMalformedJSON)

		case errors.As(err, &unmarshalTypeError):
			return NewBadRequestError(constants.MsgMalformedJSON)

		default:
			return NewBadRequestError(constants.MsgMalformedJSON)
		}
	}

	overlayQueryParams(r, v)
	return nil
}

// overlayQueryParams fills string fields that are still empty from query
// parameters named after the field's json tag.
func overlayQueryParams(r *http.Request, v interface{}) {
	query := r.URL.Query()
	if len(query) == 0 {
		return
	}

	val := reflect.ValueOf(v).Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		if fieldVal.Kind() != reflect.String || !fieldVal.CanSet() || fieldVal.String() != "" {
			continue
		}

		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		if qv := query.Get(name); qv != "" {
			fieldVal.SetString(qv)
		}
	}
}
