package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// ErrInvalidBody возвращается, когда тело запроса не удалось разобрать
var ErrInvalidBody = errors.New("invalid request body")

// DecodeJSON разбирает JSON тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// DecodeBody разбирает тело в v по Content-Type:
// application/x-www-form-urlencoded и multipart/form-data - как форму, остальное - как JSON
// Поля формы сопоставляются с json-тегами v, берется первое значение каждого поля
func DecodeBody(r *http.Request, v interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
	default:
		return DecodeJSON(r, v)
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// FlexString строковое поле запроса, которое принимает и JSON-числа
// Клиенты присылают телефон как строкой, так и числом
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("expected string, got %s", data[:1])
	default:
		*s = FlexString(data)
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}
