package document

import (
	"fmt"

	"github.com/Narayana2527/health-safari-apis/internal/codec"
	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

func decode(op string, data []byte) (*domain.Document, error) {
	doc, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}
	return doc, nil
}

func encode(op string, doc *domain.Document) ([]byte, error) {
	data, err := codec.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncode, op, err)
	}
	return data, nil
}
